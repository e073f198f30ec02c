package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Lucide icon paths.
const (
	iconArrowRight  = `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`
	iconLoader      = `<path d="M21 12a9 9 0 1 1-6.219-8.56"/>`
	iconCheckCircle = `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`
	iconBot         = `<path d="M12 8V4H8"/><rect width="16" height="12" x="4" y="8" rx="2"/><path d="M2 14h2"/><path d="M20 14h2"/><path d="M15 13v2"/><path d="M9 13v2"/>`
	iconX           = `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`
)

func icon(paths, class string) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", "16"),
		g.Attr("height", "16"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.If(class != "", h.Class(class)),
		g.Raw(paths),
	)
}
