package hero

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/saaslanding/handler"
	"github.com/dmitrymomot/saaslanding/pkg/binder"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/svc/lead"
	"github.com/dmitrymomot/saaslanding/views"
)

type Config struct {
	ResetDelay time.Duration `env:"HERO_RESET_DELAY" envDefault:"3s"`
}

// Service serves the landing page and the hero form endpoints.
type Service struct {
	cfg          Config
	saver        Saver
	content      *views.Content
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

// NewService panics on a nil saver. A nil content uses the embedded copy and
// a nil errorHandler falls back to plain text errors.
func NewService(
	cfg Config,
	saver Saver,
	content *views.Content,
	log *slog.Logger,
	errorHandler handler.ErrorHandler,
) *Service {
	if saver == nil {
		panic("hero: saver cannot be nil")
	}
	if content == nil {
		content = views.DefaultContent()
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	return &Service{
		cfg:          cfg,
		saver:        saver,
		content:      content,
		log:          log.With(logger.Component("hero")),
		errorHandler: errorHandler,
	}
}

// Handle returns the router for the page, the form endpoints and the JSON
// lead API.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(userAgentMiddleware)

	r.Get("/", handler.Wrap(
		handler.Decorate(s.index, logRequest[struct{}](s.log, "hero.index")),
		handler.WithErrorHandler(s.errorHandler),
	))

	r.Post("/hero/subscribe", handler.Wrap(
		handler.Decorate(s.subscribe, logRequest[State](s.log, "hero.subscribe")),
		handler.WithBinders(binder.Signals(), binder.Form()),
		handler.WithErrorHandler(s.errorHandler),
	))

	r.Post("/hero/dismiss", handler.Wrap(s.dismiss,
		handler.WithBinders(binder.Signals(), binder.Form()),
		handler.WithErrorHandler(s.errorHandler),
	))

	r.Post("/api/leads", handler.Wrap(
		handler.Decorate(s.createLead, logRequest[leadRequest](s.log, "api.leads.create")),
		handler.WithBinders(binder.JSON(), binder.Form()),
		handler.WithErrorHandler(jsonErrorHandler(s.log)),
	))

	return r
}

func (s *Service) newForm(initial State, opts ...FormOption) *Form {
	opts = append([]FormOption{
		WithInitialState(initial),
		WithResetDelay(s.cfg.ResetDelay),
		WithLogger(s.log),
	}, opts...)
	return NewForm(s.saver, opts...)
}

func (s *Service) page(st State) views.PageParams {
	return views.PageParams{
		Content:  s.content,
		Form:     st.formParams(s.content.EmailPlaceholder),
		Snackbar: st.snackbarParams(),
	}
}

func userAgentMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := lead.WithUserAgent(r.Context(), r.UserAgent())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logRequest[R any](log *slog.Logger, name string) handler.Decorator[R] {
	return func(next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				logger.Handler(name),
				slog.Bool("datastar", handler.IsDataStar(ctx.Request())),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
