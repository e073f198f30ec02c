package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Form lifecycle phases as carried in the "phase" signal.
const (
	PhaseIdle       = "idle"
	PhaseSubmitting = "submitting"
	PhaseSucceeded  = "succeeded"
)

const (
	LabelIdle       = "Get your AI Agent"
	LabelSubmitting = "Submitting..."
	LabelSucceeded  = "Request Submitted!"
)

const (
	EmailFormID         = "email-form"
	defaultPlaceholder  = "Enter your business email"
	subscribeAction     = "/hero/subscribe"
	subscribeOnKeyEnter = "evt.key === 'Enter' && $phase === 'idle' && (evt.preventDefault(), @post('/hero/subscribe?key=Enter'))"
)

// unlockOnStreamEnd returns the form to idle when a subscribe stream started
// from inside the form ends or fails before the server sent the idle phase.
const unlockOnStreamEnd = "['finished', 'error', 'retries-failed'].includes(evt.detail.type) && el.contains(evt.detail.el) && $phase !== 'idle' && ($phase = 'idle')"

type EmailFormParams struct {
	Email       string
	Phase       string
	Placeholder string
}

// Disabled reports whether the submit control is disabled.
func (p EmailFormParams) Disabled() bool {
	return p.Phase != "" && p.Phase != PhaseIdle
}

// EmailForm renders the email input and submit button. The form posts to
// /hero/subscribe without JavaScript and through DataStar otherwise.
func EmailForm(p EmailFormParams) templ.Component {
	return Component(emailForm(p))
}

func emailForm(p EmailFormParams) g.Node {
	placeholder := p.Placeholder
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}

	return h.Form(
		h.ID(EmailFormID),
		h.Class("mb-16 w-full max-w-xl mx-auto"),
		h.Method("post"),
		h.Action(subscribeAction),
		g.Attr("data-on:submit__prevent", "@post('"+subscribeAction+"')"),
		g.Attr("data-on:datastar-fetch", unlockOnStreamEnd),
		h.Div(
			h.Class("relative flex items-center rounded-full bg-gradient-to-r from-blue-500/20 via-violet-500/20 to-blue-500/20 p-[2px] border border-transparent bg-clip-padding"),
			h.Div(h.Class("absolute inset-0 rounded-full bg-gradient-to-r from-blue-400/50 via-violet-400/50 to-blue-400/50 -z-10 blur-sm")),
			h.Div(
				h.Class("flex flex-1 items-center rounded-full bg-[#050505] overflow-hidden"),
				h.Input(
					h.Type("email"),
					h.Name("email"),
					h.Value(p.Email),
					h.Placeholder(placeholder),
					g.Attr("autocomplete", "email"),
					g.Attr("data-bind:email"),
					g.Attr("data-on:keydown", subscribeOnKeyEnter),
					h.Class("flex-1 bg-transparent text-white px-6 py-4 outline-none placeholder:text-gray-500 text-sm"),
				),
				h.Button(
					h.Type("submit"),
					g.If(p.Disabled(), h.Disabled()),
					g.Attr("data-attr:disabled", "$phase !== 'idle'"),
					h.Class(buttonClass(p.Phase)),
					buttonContent(p.Phase),
				),
			),
		),
	)
}

func buttonClass(phase string) string {
	const base = "whitespace-nowrap px-6 py-4 rounded-full transition-all font-medium flex items-center justify-center gap-2 "
	switch phase {
	case PhaseSucceeded:
		return base + "bg-green-600 text-white"
	case PhaseSubmitting:
		return base + "bg-gradient-to-r from-violet-600/70 to-blue-600/70 text-white cursor-not-allowed"
	default:
		return base + "bg-gradient-to-r from-violet-500 to-blue-500 text-white hover:from-violet-600 hover:to-blue-600"
	}
}

func buttonContent(phase string) g.Node {
	switch phase {
	case PhaseSucceeded:
		return g.Group([]g.Node{icon(iconCheckCircle, ""), g.Text(LabelSucceeded)})
	case PhaseSubmitting:
		return g.Group([]g.Node{icon(iconLoader, "animate-spin"), g.Text(LabelSubmitting)})
	default:
		return g.Group([]g.Node{g.Text(LabelIdle), icon(iconArrowRight, "")})
	}
}
