package hero

import "errors"

var (
	ErrSubmitDisabled = errors.New("submit is disabled while a submission is in progress or just succeeded")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrSaveFailed     = errors.New("failed to save email")
	ErrClosed         = errors.New("form is closed")
)
