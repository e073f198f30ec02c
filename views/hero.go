package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero renders the headline, the email form and the product mockup.
func Hero(c *Content, form EmailFormParams) templ.Component {
	return Component(hero(orDefault(c), form))
}

// ProductMockup renders the product image with decorative floating cards.
func ProductMockup(c *Content) templ.Component {
	return Component(mockup(orDefault(c).Mockup))
}

func hero(c *Content, form EmailFormParams) g.Node {
	if form.Placeholder == "" {
		form.Placeholder = c.EmailPlaceholder
	}

	return h.Section(
		h.ID("hero"),
		h.Class("relative flex flex-col items-center justify-center pt-32 pb-20 px-4 text-center overflow-hidden"),
		h.Div(h.Class("absolute top-0 left-1/2 -translate-x-1/2 w-[800px] h-[500px] bg-violet-600/20 opacity-30 blur-[100px] rounded-full pointer-events-none")),
		h.Div(
			h.Class("relative z-10 max-w-4xl mx-auto"),
			h.H1(
				h.Class("text-5xl md:text-6xl lg:text-7xl font-semibold tracking-tight text-white mb-6 leading-[1.1]"),
				g.Text(c.Headline),
				h.Br(),
				h.Span(
					h.Class("text-transparent bg-clip-text bg-gradient-to-r from-violet-300 to-violet-600"),
					g.Text(c.HeadlineAccent),
				),
			),
			h.P(
				h.Class("text-lg text-gray-400 max-w-2xl mx-auto mb-10 leading-relaxed"),
				g.Text(c.Lead),
			),
			emailForm(form),
			mockup(c.Mockup),
		),
	)
}

func mockup(m Mockup) g.Node {
	const card = "absolute hidden md:flex gap-3 bg-neutral-800/90 border border-white/10 p-3 rounded-xl shadow-lg backdrop-blur-md animate-bounce "

	return h.Div(
		h.Class("relative mx-auto w-full max-w-3xl"),
		h.Div(
			h.Class("relative rounded-2xl bg-neutral-900/50 p-2 border border-white/10 shadow-2xl shadow-violet-900/20 backdrop-blur-sm"),
			g.If(m.ImageURL != "", h.Img(
				h.Src(m.ImageURL),
				h.Alt(m.ImageAlt),
				h.Class("w-full h-full object-cover rounded-lg"),
			)),
			g.If(m.Satisfaction != "", h.Div(
				h.Class(card+"items-center -left-12 top-1/3 duration-[3000ms]"),
				h.Div(h.Class("h-2 w-2 rounded-full bg-green-500")),
				h.Span(h.Class("text-xs font-medium"), g.Text(m.Satisfaction)),
			)),
			g.If(m.TicketTitle != "", h.Div(
				h.Class(card+"items-center -right-8 bottom-1/4 duration-[4000ms]"),
				avatar("bg-violet-600", icon(iconBot, "")),
				h.Div(
					h.Class("flex flex-col text-left"),
					h.Span(h.Class("text-xs font-medium"), g.Text(m.TicketTitle)),
					h.Span(h.Class("text-[10px] text-gray-400"), g.Text(m.TicketTime)),
				),
			)),
			g.If(m.BotMessage != "", h.Div(
				h.Class(card+"items-start -left-16 top-[70%] duration-[3500ms] max-w-[280px]"),
				avatar("bg-violet-600", icon(iconBot, "")),
				message(m.BotMessage),
			)),
			g.If(m.CustomerMessage != "", h.Div(
				h.Class(card+"items-start -right-16 top-1/3 duration-[4500ms] max-w-[280px]"),
				avatar("bg-blue-500", g.Text(m.CustomerInitial)),
				message(m.CustomerMessage),
			)),
		),
	)
}

func avatar(bg string, child g.Node) g.Node {
	return h.Div(
		h.Class("h-8 w-8 rounded-full "+bg+" flex items-center justify-center text-xs font-semibold flex-shrink-0"),
		child,
	)
}

func message(text string) g.Node {
	return h.Div(
		h.Class("flex flex-col text-left"),
		h.Span(h.Class("text-xs font-medium text-white"), g.Text(text)),
	)
}

func orDefault(c *Content) *Content {
	if c == nil {
		return DefaultContent()
	}
	return c
}
