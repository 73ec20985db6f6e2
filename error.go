package siteaudit

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are machine-readable and stable; human-readable messages belong in
// Error.Message. EINTERNAL is reserved for conditions that should never
// reach a user verbatim.
const (
	ECONFLICT      = "conflict"       // action conflicts with existing state
	EINTERNAL      = "internal"       // internal error
	EINVALID       = "invalid"        // validation failed
	ENOCONTENT     = "no_content"     // no main content found in page
	ENOTFOUND      = "not_found"      // entity does not exist
	EUNAVAILABLE   = "unavailable"    // network or collaborator unreachable
	EUNPROCESSABLE = "unprocessable"  // response could not be parsed
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code so callers can branch on failure modes without
// string matching.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("siteaudit error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
