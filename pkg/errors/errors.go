// Package errors provides structured error types for the MirrorKit library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context and stack-text preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown input format: %s", ext)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "failed to load %s", path)
//
// # Stack text
//
// Every Error captures the stack text of its construction site. The copy
// engine relies on this when it rebuilds error-kind values: Remake turns an
// arbitrary error into a structured Error preserving message, cause chain,
// and any stack text already recorded.
package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidOption Code = "INVALID_OPTION"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code, optional cause, and the stack
// text of its construction site.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
	Stack   string // Stack text captured at construction
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
		Stack:   captureStack(2),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Stack:   captureStack(2),
	}
}

// Remake normalizes an arbitrary error into an independent *Error.
//
// For an *Error input, the result is a fresh value with the same code,
// message, stack text, and a recursively remade cause. For any other error,
// the message is preserved, the cause chain is rebuilt link by link via
// errors.Unwrap, and new stack text is captured. The input is never
// retained, so mutating the copy cannot affect the source chain.
//
// A nil error yields nil, whether the nil is untyped or a typed nil
// hiding behind the interface.
func Remake(err error) *Error {
	if err == nil {
		return nil
	}
	switch rv := reflect.ValueOf(err); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return nil
		}
	}

	var e *Error
	if errors.As(err, &e) && e == err {
		out := &Error{Code: e.Code, Message: e.Message, Stack: e.Stack}
		if e.Cause != nil {
			out.Cause = Remake(e.Cause)
		}
		return out
	}

	out := &Error{
		Code:    ErrCodeInternal,
		Message: err.Error(),
		Stack:   captureStack(2),
	}
	if cause := errors.Unwrap(err); cause != nil {
		out.Cause = Remake(cause)
	}
	return out
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
