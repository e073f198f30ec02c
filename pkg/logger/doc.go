// Package logger builds log/slog loggers for the landing service.
//
// New picks a JSON or text handler and, when context extractors are
// registered, wraps it so request scoped values (the request id) are attached
// to records written with a request context. WithEnvironment selects the
// per-environment preset and WithLevelName applies an explicit LOG_LEVEL on top.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "landing"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "lead captured", logger.LeadID(l.ID), logger.Email(l.Email))
//
// The attribute helpers keep key names stable. Email masks the local part.
package logger
