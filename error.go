package eortologio

import (
	"errors"
	"fmt"
)

// Application error codes. These map to HTTP status codes at the API
// boundary but carry no HTTP dependency themselves.
const (
	EINVALID     = "invalid"     // bad caller input
	ENOTFOUND    = "not_found"   // confirmed absent upstream
	EPARSE       = "parse"       // expected markup missing; upstream format drift
	EUNAVAILABLE = "unavailable" // network or protocol failure
	ETIMEOUT     = "timeout"     // upstream did not answer within the deadline
	EINTERNAL    = "internal"    // anything unexpected
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is safe to show to an end user.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("eortologio error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps err and returns its code, if any. Nil errors
// return an empty string; non-application errors return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if any.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "An internal error has occurred."
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
