package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/saaslanding/pkg/binder"
)

// HandlerFunc handles a request bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes itself to the client.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes the request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding and rendering failures to the client.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc with cross-cutting behavior.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// Decorate applies decorators so that the first one is the outermost.
func Decorate[R any](h HandlerFunc[R], decorators ...Decorator[R]) HandlerFunc[R] {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] != nil {
			h = decorators[i](h)
		}
	}
	return h
}

type Option func(*options)

type options struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders appends binders. They run in order and a binder returning
// binder.ErrBinderNotApplicable is skipped.
func WithBinders(binders ...Bind) Option {
	return func(o *options) {
		for _, b := range binders {
			if b != nil {
				o.binders = append(o.binders, b)
			}
		}
	}
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

func plainErrorHandler(ctx Context, err error) {
	info := classify(err)
	http.Error(ctx.ResponseWriter(), info.message, info.status)
}

// Wrap adapts a typed handler to http.HandlerFunc.
//
//	r.Post("/api/leads", handler.Wrap(
//		handler.Decorate(createLead, logRequest[leadRequest](log, "api.leads.create")),
//		handler.WithBinders(binder.JSON(), binder.Form()),
//		handler.WithErrorHandler(errHandler),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	o := &options{errorHandler: plainErrorHandler}
	for _, opt := range opts {
		opt(o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range o.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			if err != nil {
				o.errorHandler(ctx, BadRequest(err))
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			o.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			o.errorHandler(ctx, err)
		}
	}
}
