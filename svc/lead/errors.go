package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrDuplicateLead     = errors.New("lead already exists")
	ErrFailedToSaveLead  = errors.New("failed to save lead")
	ErrFailedToLoadLeads = errors.New("failed to load leads")
	ErrNotifyFailed      = errors.New("failed to send lead notifications")
)

var (
	ErrInvalidEmail      = NewPublicError("Please enter a valid email address", nil)
	ErrAlreadySubscribed = NewPublicError("This email is already on our list.", ErrDuplicateLead)
)

// PublicError is an error whose message is safe to show to the visitor.
type PublicError struct {
	Message string
	Err     error
}

func NewPublicError(message string, err error) *PublicError {
	return &PublicError{Message: message, Err: err}
}

func (e *PublicError) Error() string { return e.Message }

func (e *PublicError) Unwrap() error { return e.Err }

func (e *PublicError) PublicMessage() string { return e.Message }

// PublicMessage returns the first public message found in err's chain.
func PublicMessage(err error) (string, bool) {
	var pe interface{ PublicMessage() string }
	if errors.As(err, &pe) && pe.PublicMessage() != "" {
		return pe.PublicMessage(), true
	}
	return "", false
}
