// Package errors provides structured error types for licensefinder.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the package manager adapters
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input and configuration validation failures
//   - *_NOT_FOUND: Missing files or resources
//   - COMMAND_FAILED: An external tool exited unsuccessfully
//   - REPORT_PARSE: A dependency report could not be decoded
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown format: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
//
// The two failure kinds raised by adapters have dedicated types:
// [CommandError] for unsuccessful subprocess invocations and [ParseError]
// for malformed reports. Both carry a [Code] and work with [Is].
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidGroup  Code = "INVALID_GROUP"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// External tool errors
	ErrCodeCommandFailed Code = "COMMAND_FAILED"
	ErrCodeReportParse   Code = "REPORT_PARSE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// coder is implemented by every error type in this package.
type coder interface {
	error
	ErrorCode() Code
}

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

// ErrorCode returns e.Code.
func (e *Error) ErrorCode() Code { return e.Code }

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost coded error.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and its cause without the code
// prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// CommandError reports an external command that exited unsuccessfully.
// The message format is stable and relied upon by callers:
//
//	Command '<command>' failed to execute in <dir>: <stderr>
type CommandError struct {
	Command string // Full command line as invoked
	Dir     string // Working directory of the invocation
	Stderr  string // Captured diagnostic output
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("Command '%s' failed to execute in %s: %s", e.Command, e.Dir, e.Stderr)
}

// ErrorCode returns ErrCodeCommandFailed.
func (e *CommandError) ErrorCode() Code { return ErrCodeCommandFailed }

// ParseError reports a dependency report that could not be decoded.
type ParseError struct {
	Source string // Which document failed (file path or "license summary N")
	Cause  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse %s: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("parse %s: malformed report", e.Source)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error { return e.Cause }

// ErrorCode returns ErrCodeReportParse.
func (e *ParseError) ErrorCode() Code { return ErrCodeReportParse }
