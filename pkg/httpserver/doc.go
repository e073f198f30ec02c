// Package httpserver runs an http.Handler with graceful shutdown and exposes
// liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log,
//		httpserver.HealthCheck{Name: "postgres", Check: pg.Healthcheck(pool)},
//	))
//	if err := srv.Run(ctx, r); err != nil { ... }
//
// Run returns when ctx is canceled or on SIGINT/SIGTERM. Errors are wrapped
// with ErrStart or ErrShutdown.
package httpserver
