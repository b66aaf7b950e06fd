package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error with an HTTP status code
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidArgument marks a request that is malformed or fails validation.
func InvalidArgument(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound marks a lookup for a record that does not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Conflict marks an operation rejected by current state, such as a stock
// reservation that lost its race.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Failed wraps an unexpected store or infrastructure error. The cause is
// retained for logging and never serialized to the client.
func Failed(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Common error types
var (
	ErrBadRequest     = InvalidArgument("Bad request")
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = NotFound("Not found")
	ErrInternalServer = Failed("Internal server error", nil)
)

// IsCode reports whether err is an *Error carrying the given HTTP code.
func IsCode(err error, code int) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}

// From converts any error into an *Error, wrapping unknown errors as Failed.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return Failed("Internal server error", err)
}
