// Package errors provides structured error types for svglayer.
//
// Builder operations on a layer fail synchronously with a coded error when
// their input is malformed, and leave the layer untouched. Collaborator
// packages (file export, upload, scene loading) wrap their I/O failures with
// the same codes so the CLI can present a user-friendly message.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND / FILE_NOT_FOUND: Resource not found
//   - NETWORK_*: Network-related errors
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	_, err := layer.AddPolygon(svglayer.Color("red"), 1, 2, 3)
//	if errors.Is(err, errors.ErrCodeInvalidPolygon) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "upload layer to %s", room)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes. Builder validation failures use the INVALID_* family.
const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGradient Code = "INVALID_GRADIENT"
	ErrCodeInvalidPolygon  Code = "INVALID_POLYGON"
	ErrCodeInvalidImage    Code = "INVALID_IMAGE"
	ErrCodeInvalidFilter   Code = "INVALID_FILTER"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidScene    Code = "INVALID_SCENE"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Upload transport.
	ErrCodeNetwork      Code = "NETWORK_ERROR"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Validation reports whether c is one of the INVALID_* input codes.
func (c Code) Validation() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error is a coded failure. Message is meant for the user; Cause carries the
// underlying error, if any.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code, a formatted message and cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Within adds location context to err, such as the scene item that failed.
// The code of a coded err is kept; uncoded errors get fallback.
func Within(err error, fallback Code, format string, args ...any) *Error {
	code := GetCode(err)
	if code == "" {
		code = fallback
	}
	where := fmt.Sprintf(format, args...)
	return &Error{Code: code, Message: where + ": " + UserMessage(err), Cause: err}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err without code prefixes or causes. Uncoded errors are
// returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
