package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	SnackbarID      = "snackbar"
	SnackbarSuccess = "success"
	SnackbarError   = "error"
	dismissAction   = "/hero/dismiss"
)

// SnackbarParams describes the transient notification. The close action
// posts to /hero/dismiss.
type SnackbarParams struct {
	Message string
	Type    string
	Open    bool
}

func (p SnackbarParams) visible() bool {
	return p.Open && p.Message != ""
}

func Snackbar(p SnackbarParams) templ.Component {
	return Component(snackbar(p))
}

func snackbar(p SnackbarParams) g.Node {
	return h.Div(
		h.ID(SnackbarID),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Attr("data-snackbar-type", p.Type),
		h.Class(snackbarClass(p)),
		g.If(p.visible(), g.Group([]g.Node{
			h.Span(h.Class("text-sm font-medium"), g.Text(p.Message)),
			h.Form(
				h.Method("post"),
				h.Action(dismissAction),
				h.Button(
					h.Type("submit"),
					g.Attr("aria-label", "Close"),
					g.Attr("data-on:click__prevent", "@post('"+dismissAction+"')"),
					h.Class("rounded-full p-1 opacity-70 hover:opacity-100"),
					icon(iconX, ""),
				),
			),
		})),
	)
}

func snackbarClass(p SnackbarParams) string {
	const base = "fixed bottom-6 left-1/2 -translate-x-1/2 z-50 flex items-center gap-3 rounded-xl px-4 py-3 shadow-lg text-white transition-all "
	if !p.visible() {
		return base + "hidden"
	}
	if p.Type == SnackbarSuccess {
		return base + "bg-green-600"
	}
	return base + "bg-red-600"
}
