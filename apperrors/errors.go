package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to at the
// endpoint boundary.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports invalid client input (e.g. a non-positive amount).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Gateway reports a failed call to the remote payment gateway. Transient and
// permanent failures are treated alike; neither is retried.
func Gateway(err error) *Error {
	return New(http.StatusBadGateway, "payment gateway request failed", err)
}

// NotFound reports a lookup that matched no order.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// SignatureMismatch reports a payment callback whose signature did not
// authenticate.
func SignatureMismatch() *Error {
	return New(http.StatusBadRequest, "payment verification failed", nil)
}

// Store reports a persistence layer failure.
func Store(err error) *Error {
	return New(http.StatusInternalServerError, "database error", err)
}

// Is reports whether err is an *Error with the given status code.
func Is(err error, code int) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
