package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope for every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// WithJSONErrorMessage replaces the message of an error envelope.
func WithJSONErrorMessage(msg string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && msg != "" {
			r.body.Error.Message = msg
		}
	}
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError writes err in the error envelope. ValidationError maps to 422
// with details, HTTPError to its own status, anything else to 500 with a
// generic message.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorDetail(err, &r.status)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorDetail(err error, status *int) *ErrorDetail {
	var vErr ValidationError
	if errors.As(err, &vErr) {
		*status = http.StatusUnprocessableEntity
		d := &ErrorDetail{Code: "validation_error", Message: "Validation failed"}
		if len(vErr) > 0 {
			d.Details = maps.Clone(map[string][]string(vErr))
		}
		return d
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}
