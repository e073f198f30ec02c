package async

import "errors"

var (
	ErrTimeout = errors.New("async: gave up waiting for future")
	ErrPanic   = errors.New("async: function panicked")
)
