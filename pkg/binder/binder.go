package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Func matches handler.Bind.
type Func = func(r *http.Request, v any) error

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		// Fall back to the raw prefix so a malformed parameter still routes.
		mt, _, _ = strings.Cut(ct, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
