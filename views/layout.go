package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ToastContainerID is the element error toasts are patched into.
const ToastContainerID = "toast-container"

func layout(c *Content, signals string, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(c.Title)),
				g.If(c.Description != "", h.Meta(h.Name("description"), h.Content(c.Description))),
				g.If(c.Assets.Tailwind != "", h.Script(h.Src(c.Assets.Tailwind))),
				g.If(c.Assets.Datastar != "", h.Script(h.Type("module"), h.Src(c.Assets.Datastar))),
			),
			h.Body(
				h.Class("min-h-screen bg-[#050505] text-white antialiased"),
				g.If(signals != "", g.Attr("data-signals", signals)),
				h.Div(h.ID(ToastContainerID), h.Class("fixed top-4 right-4 z-50 flex flex-col gap-2")),
				g.Group(children),
			),
		),
	)
}
