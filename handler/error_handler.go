package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/requestid"
)

type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Kind      string // "error" or "warning"
	RequestID string
}

type ErrorHandlerConfig struct {
	// ErrorPage renders plain HTTP failures. Nil falls back to http.Error.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders DataStar failures. Nil drops the response body.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to an inner patch.
	ToastMode TemplOption
}

type errorInfo struct {
	status  int
	message string
}

func classify(err error) errorInfo {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		return errorInfo{status: http.StatusUnprocessableEntity, message: vErr.Error()}
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		msg := http.StatusText(httpErr.Code)
		if httpErr.Code < http.StatusInternalServerError && httpErr.Key != "" {
			msg = httpErr.Key
		}
		return errorInfo{status: httpErr.Code, message: msg}
	}
	return errorInfo{status: http.StatusInternalServerError, message: "An error occurred processing your request"}
}

// NewErrorHandler renders an error page for plain requests and a toast patch
// for DataStar requests. Client errors log at warn, server errors at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == nil {
		cfg.ToastMode = WithPatchMode(datastar.ElementPatchModeInner)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classify(err)
		reqID := requestid.FromContext(r.Context())

		level := slog.LevelError
		kind := "error"
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
			kind = "warning"
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			toast := cfg.ErrorToast(ErrorToastParams{Message: info.message, Kind: kind, RequestID: reqID})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), cfg.ToastMode)
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}
		page := cfg.ErrorPage(ErrorPageParams{
			StatusCode: info.status,
			Message:    info.message,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		})
		if rerr := TemplStatus(info.status, page).Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "render error page", logger.Error(rerr))
		}
	}
}
