package hero

import "github.com/dmitrymomot/saaslanding/views"

// Phase is the submission lifecycle. Errors are not a phase: a failed
// submission returns to PhaseIdle.
type Phase string

const (
	PhaseIdle       Phase = views.PhaseIdle
	PhaseSubmitting Phase = views.PhaseSubmitting
	PhaseSucceeded  Phase = views.PhaseSucceeded
)

func (p Phase) valid() bool {
	switch p {
	case PhaseIdle, PhaseSubmitting, PhaseSucceeded:
		return true
	}
	return false
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = views.SnackbarSuccess
	NotificationError   NotificationKind = views.SnackbarError
)

// Notification is the snackbar content. Dismissing hides it but keeps the
// message and kind.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
	Visible bool             `json:"visible"`
}

// State is the complete form state. Its JSON encoding is the DataStar signal
// set of the page.
type State struct {
	Email        string       `json:"email" form:"email"`
	Phase        Phase        `json:"phase" form:"-"`
	Notification Notification `json:"notification" form:"-"`
}

// SubmitDisabled reports whether submission is currently rejected.
func (s State) SubmitDisabled() bool {
	return s.Phase != PhaseIdle
}

func (s State) formParams(placeholder string) views.EmailFormParams {
	return views.EmailFormParams{
		Email:       s.Email,
		Phase:       string(s.Phase),
		Placeholder: placeholder,
	}
}

func (s State) snackbarParams() views.SnackbarParams {
	return views.SnackbarParams{
		Message: s.Notification.Message,
		Type:    string(s.Notification.Kind),
		Open:    s.Notification.Visible,
	}
}

const (
	MessageInvalidEmail = "Please enter a valid email address"
	MessageSucceeded    = "Thanks! We'll contact you shortly."
	MessageSaveFailed   = "Failed to save. Please try again."
)

func errorNotification(msg string) Notification {
	return Notification{Message: msg, Kind: NotificationError, Visible: true}
}
