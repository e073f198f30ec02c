package handler

import (
	"errors"
	"net/http"
	"slices"
	"strings"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError pairs a status code with a client facing message key.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e HTTPError) Unwrap() error { return e.Err }

// BadRequest wraps err as a 400. Errors that already carry a status are returned as is.
func BadRequest(err error) error {
	var httpErr HTTPError
	var vErr ValidationError
	if errors.As(err, &httpErr) || errors.As(err, &vErr) {
		return err
	}
	return HTTPError{Code: http.StatusBadRequest, Key: "bad_request", Err: err}
}

// ValidationError maps field names to messages.
type ValidationError map[string][]string

func NewValidationError() ValidationError { return ValidationError{} }

func (v ValidationError) Add(field, message string) ValidationError {
	v[field] = append(v[field], message)
	return v
}

func (v ValidationError) IsEmpty() bool { return len(v) == 0 }

// First returns the first message recorded for field, or "".
func (v ValidationError) First(field string) string {
	if msgs := v[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (v ValidationError) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(v[f], ", "))
	}
	return strings.Join(parts, "; ")
}
