// Package errors provides the structured error type used across pawfetch.
// An Error carries a code for categorizing the failure, a message, an
// optional suggestion and the underlying cause.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrProbe  = "PROBE"
	ErrRender = "RENDER"
)

// Error represents a structured error. Its text renders as:
//
//	✗ <What failed>
//
//	  <Why it failed>
//
//	  <How to fix it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrProbe code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrProbe,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pawErr *Error
	if errors.As(err, &pawErr) {
		return pawErr.Code == code
	}
	return false
}
