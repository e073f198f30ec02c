package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/saaslanding/handler"
	"github.com/dmitrymomot/saaslanding/modules/hero"
	"github.com/dmitrymomot/saaslanding/pkg/clientip"
	"github.com/dmitrymomot/saaslanding/pkg/email"
	"github.com/dmitrymomot/saaslanding/pkg/environment"
	"github.com/dmitrymomot/saaslanding/pkg/httpserver"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/requestid"
	"github.com/dmitrymomot/saaslanding/svc/lead"
	"github.com/dmitrymomot/saaslanding/views"
)

// NewLogger builds the process logger for cfg.
func NewLogger(cfg AppConfig) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

// App holds the wired services of the landing site.
type App struct {
	cfg     Config
	log     *slog.Logger
	storage *Storage
	content *views.Content
	leads   *lead.Service
}

// New wires the lead service and views on top of an opened storage.
func New(cfg Config, storage *Storage, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	content, err := views.LoadContent(cfg.App.ContentFile)
	if err != nil {
		return nil, err
	}
	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		return nil, err
	}
	leads := lead.NewService(cfg.Lead, storage,
		lead.WithLogger(log),
		lead.WithMailer(sender),
	)
	return &App{
		cfg:     cfg,
		log:     log,
		storage: storage,
		content: content,
		leads:   leads,
	}, nil
}

func (a *App) Leads() *lead.Service { return a.leads }

// Router returns the root handler with probes, middleware and the hero module.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(a.cfg.App.Env)),
		clientip.Middleware,
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(a.log, a.storage.Checks...))

	errHandler := handler.NewErrorHandler(a.log, handler.ErrorHandlerConfig{
		ErrorPage:   views.ErrorPage(a.content),
		ErrorToast:  views.ErrorToast,
		ToastTarget: "#" + views.ToastContainerID,
	})
	heroSvc := hero.NewService(hero.Config{ResetDelay: a.cfg.App.ResetDelay}, a.leads, a.content, a.log, errHandler)
	r.Mount("/", heroSvc.Handle())

	return r
}

// Serve runs the HTTP server until ctx is canceled or a shutdown signal
// arrives.
func (a *App) Serve(ctx context.Context) error {
	srv := httpserver.NewFromConfig(a.cfg.Server, httpserver.WithLogger(a.log))
	return srv.Run(ctx, a.Router())
}
