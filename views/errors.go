package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/saaslanding/handler"
)

// ErrorPage returns the full page renderer used by handler.NewErrorHandler.
func ErrorPage(c *Content) func(handler.ErrorPageParams) templ.Component {
	c = orDefault(c)
	return func(p handler.ErrorPageParams) templ.Component {
		return Component(layout(c, "",
			h.Main(
				h.Class("flex min-h-screen flex-col items-center justify-center gap-4 px-4 text-center"),
				h.P(h.Class("text-6xl font-semibold text-violet-400"), g.Text(strconv.Itoa(p.StatusCode))),
				h.H1(h.Class("text-2xl font-medium"), g.Text(http.StatusText(p.StatusCode))),
				h.P(h.Class("text-gray-400"), g.Text(p.Message)),
				g.If(p.RequestID != "", h.P(
					h.Class("text-xs text-gray-500"),
					g.Text("Request ID: "+p.RequestID),
				)),
				g.If(p.RetryURL != "", h.A(
					h.Href(p.RetryURL),
					h.Class("rounded-full bg-violet-600 px-6 py-3 text-sm font-medium hover:bg-violet-500"),
					g.Text("Try again"),
				)),
			),
		))
	}
}

// ErrorToast renders a dismissible toast for failed DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	bg := "bg-red-600"
	if p.Kind == "warning" {
		bg = "bg-amber-600"
	}
	return Component(h.Div(
		h.Class("rounded-xl px-4 py-3 text-sm text-white shadow-lg "+bg),
		g.Attr("role", "alert"),
		g.Attr("data-on:click", "el.remove()"),
		g.Text(p.Message),
		g.If(p.RequestID != "", h.Span(
			h.Class("ml-2 text-xs opacity-70"),
			g.Text("("+p.RequestID+")"),
		)),
	))
}
