// Package apperr defines the operational error taxonomy of the API.
// Operational errors carry an HTTP status and a client-safe message;
// anything else is treated as a programming error and surfaces as a
// generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an operational error with a client-facing message.
type Error struct {
	Status  int
	Message string
	Err     error // underlying cause, logged but never serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or missing input (400).
func Validation(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Authentication reports bad credentials (401).
func Authentication(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound reports a missing resource or an empty result set (404).
func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation (409).
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Upstream wraps a third-party service failure (500). The upstream
// message is passed through to the client verbatim.
func Upstream(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf returns the HTTP status for err, defaulting to 500 for
// non-operational errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message for err. Non-operational
// errors get a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong"
}
