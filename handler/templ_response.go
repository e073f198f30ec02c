package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the one with the component's id.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component plus its patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(c templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: c, Options: opts}
}

type templResponse struct {
	status  int
	partial []TemplPatch
	full    templ.Component
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) && len(t.partial) > 0 {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.partial {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders c as HTML, or as a single element patch for DataStar requests.
func Templ(c templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: []TemplPatch{Patch(c, opts...)}, full: c}
}

// TemplStatus renders c as HTML with the given status code.
func TemplStatus(status int, c templ.Component) Response {
	return templResponse{status: status, full: c}
}

// TemplPartial patches partial for DataStar requests and renders full otherwise.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{partial: []TemplPatch{Patch(partial, opts...)}, full: full}
}

// TemplMulti sends one patch per component for DataStar requests. Plain
// requests get the components concatenated in order.
func TemplMulti(patches ...TemplPatch) Response {
	parts := make([]templ.Component, 0, len(patches))
	for _, p := range patches {
		parts = append(parts, p.Component)
	}
	return templResponse{partial: patches, full: templ.Join(parts...)}
}
