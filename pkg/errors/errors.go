// Package errors provides structured error types for pypiscope.
//
// Every failure surfaced by the library carries a machine-readable code so
// the CLI and the HTTP server can react without string matching:
//   - CONFIGURATION_ERROR: missing or invalid client configuration
//   - FETCH_ERROR: transport or HTTP failure talking to the registry
//   - PARSE_ERROR: profile markup missing expected structure
//   - DECODE_ERROR: malformed JSON in a registry response
//   - EMPTY_RESULT: listing succeeded but returned no packages
//   - INVALID_INPUT: rejected usernames, package names, or URLs
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFetch, "fetching user profile: %v", cause)
//	if errors.Is(err, errors.ErrCodeFetch) {
//	    // Handle transport failure
//	}
//
//	// Wrap existing errors, preserving the cause for errors.Unwrap
//	err := errors.Wrap(errors.ErrCodeDecode, origErr, "decoding response for %s", pkg)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories the library can report.
const (
	// ErrCodeConfiguration covers missing or invalid client configuration,
	// most commonly an unset username.
	ErrCodeConfiguration Code = "CONFIGURATION_ERROR"

	// ErrCodeFetch covers transport and HTTP failures (timeouts, connection
	// errors, non-200 statuses).
	ErrCodeFetch Code = "FETCH_ERROR"

	// ErrCodeParse covers profile pages whose markup lacks the structural
	// elements the scraper expects.
	ErrCodeParse Code = "PARSE_ERROR"

	// ErrCodeDecode covers malformed JSON in registry responses.
	ErrCodeDecode Code = "DECODE_ERROR"

	// ErrCodeEmptyResult is reported when a listing succeeds but the user
	// has no published packages.
	ErrCodeEmptyResult Code = "EMPTY_RESULT"

	// ErrCodeInvalidInput covers rejected usernames, package names, and URLs.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInternal covers unexpected internal failures.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Rewrap wraps cause with additional context while keeping its original code.
// If cause is not an *Error, the fallback code is used instead. The aggregator
// uses this to name the failing package without losing the failure category.
func Rewrap(cause error, fallback Code, format string, args ...any) *Error {
	code := GetCode(cause)
	if code == "" {
		code = fallback
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
