// Package errors provides structured error types for layoutkit.
//
// This package defines error codes and types that enable:
//   - Fail-fast precondition reporting from the constraint factory
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages in the CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Precondition failures raised before any constraint is built:
//   - NO_SUPERVIEW: a superview-relative operation on a root element
//   - NO_COMMON_ANCESTOR: elements in disjoint hierarchies, or an element
//     related to itself
//   - INSUFFICIENT_ELEMENTS: a collection operation given too few elements
//   - INVALID_ATTRIBUTE_PAIRING: two attributes the host cannot relate
//
// Input and tooling errors:
//   - INVALID_*: malformed numbers, priorities, identifiers, blueprints
//   - NOT_FOUND: an element id that a blueprint never declared
//   - UNSUPPORTED: a capability the element's toolkit does not provide
//   - INTERNAL_ERROR: the host engine rejected an activation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoSuperview, "element %s has no superview", id)
//	if errors.Is(err, errors.ErrCodeNoSuperview) {
//	    // Handle missing superview
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, engineErr, "activate %d constraints", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Hierarchy and pairing preconditions
	ErrCodeNoSuperview             Code = "NO_SUPERVIEW"
	ErrCodeNoCommonAncestor        Code = "NO_COMMON_ANCESTOR"
	ErrCodeInsufficientElements    Code = "INSUFFICIENT_ELEMENTS"
	ErrCodeInvalidAttributePairing Code = "INVALID_ATTRIBUTE_PAIRING"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidPriority Code = "INVALID_PRIORITY"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface. A cause carrying the same code,
// as when a blueprint op prefixes a factory error, prints the code once:
//
//	NO_COMMON_ANCESTOR: op 3 (pin-edge): header and footer share no ancestor
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.detail())
}

// detail is the message chain without the leading code.
func (e *Error) detail() string {
	if e.Cause == nil {
		return e.Message
	}
	rest := e.Cause.Error()
	if inner, ok := e.Cause.(*Error); ok && inner.Code == e.Code {
		rest = inner.detail()
	}
	if e.Message == "" {
		return rest
	}
	return e.Message + ": " + rest
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

// UserMessage returns the message chain of the outermost *Error without
// its code prefix. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.detail()
	}
	return err.Error()
}
