package views

import (
	"encoding/json"

	"github.com/a-h/templ"
)

type PageParams struct {
	Content  *Content
	Form     EmailFormParams
	Snackbar SnackbarParams
}

// Page renders the full landing page. The body carries the initial DataStar
// signals so client side state matches the rendered markup.
func Page(p PageParams) templ.Component {
	c := orDefault(p.Content)
	return Component(layout(c, pageSignals(p),
		hero(c, p.Form),
		snackbar(p.Snackbar),
	))
}

type notificationSignals struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Visible bool   `json:"visible"`
}

type formSignals struct {
	Email        string              `json:"email"`
	Phase        string              `json:"phase"`
	Notification notificationSignals `json:"notification"`
}

func pageSignals(p PageParams) string {
	phase := p.Form.Phase
	if phase == "" {
		phase = PhaseIdle
	}
	data, err := json.Marshal(formSignals{
		Email: p.Form.Email,
		Phase: phase,
		Notification: notificationSignals{
			Message: p.Snackbar.Message,
			Kind:    p.Snackbar.Type,
			Visible: p.Snackbar.Open,
		},
	})
	if err != nil {
		return ""
	}
	return string(data)
}
