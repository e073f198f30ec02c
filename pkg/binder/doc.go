// Package binder decodes HTTP requests into structs for handler.Wrap.
//
// Each binder accepts one request format and returns ErrBinderNotApplicable
// for the others, so an endpoint can list several and serve whichever the
// client sent:
//
//	handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form())
//
// JSON is strict about unknown fields and trailing data. Form reads `form`
// struct tags. Signals reads DataStar signals with `json` tags.
package binder
