// Package handler turns typed functions into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct filled by the
// configured binders, and returns a Response:
//
//	type subscribeRequest struct {
//		Email string `json:"email" form:"email"`
//	}
//
//	func subscribe(ctx handler.Context, req subscribeRequest) handler.Response {
//		if err := svc.Save(ctx, req.Email); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(map[string]bool{"success": true})
//	}
//
//	r.Post("/api/leads", handler.Wrap(subscribe,
//		handler.WithBinders(binder.JSON(), binder.Form()),
//	))
//
// Decorate stacks Decorator values (request logging, timing) around a
// HandlerFunc before it is wrapped.
//
// Responses adapt to DataStar: Templ, TemplPartial and TemplMulti send
// element patches over server-sent events when IsDataStar reports true and
// render HTML otherwise. SSE keeps the stream open for handlers that push
// several updates over time.
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler
// renders an error page or a toast depending on the request. HTTPError and
// ValidationError carry status information through both paths.
package handler
