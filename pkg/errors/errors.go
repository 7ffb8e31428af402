// Package errors provides structured error types for cyjs.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input or configuration validation failures
//   - MALFORMED_*: Structurally incomplete documents
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown format: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
// The converter reports its two failure modes with dedicated types,
// [ConfigurationError] and [MalformedDocumentError]. Both carry a code, so
// [GetCode] and [Is] work on them as well:
//
//	if errors.Is(err, errors.ErrCodeMalformedDocument) {
//	    // The document is missing a required field
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidFormat        Code = "INVALID_FORMAT"
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// Document errors
	ErrCodeMalformedDocument Code = "MALFORMED_DOCUMENT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
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

// coder is implemented by typed errors that carry a fixed code.
type coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// The outermost coded error in the chain wins. Returns empty string if no
// error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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

// ConfigurationError reports an attribute-key mapping whose source, target,
// and name roles do not resolve to three distinct field names.
type ConfigurationError struct {
	Source, Target, Name string // resolved field names
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("attribute field names must be unique (source=%q, target=%q, name=%q)",
		e.Source, e.Target, e.Name)
}

// Code returns the error code for this error type.
func (e *ConfigurationError) Code() Code {
	return ErrCodeInvalidConfiguration
}

// MalformedDocumentError reports a required field missing from a document.
// Index is the position of the offending record within Section, or -1 when
// the field belongs to the document itself.
type MalformedDocumentError struct {
	Section string // "nodes", "edges", or "" for top-level fields
	Index   int
	Field   string
	Reason  string // optional detail, e.g. a type mismatch
}

// Error implements the error interface.
func (e *MalformedDocumentError) Error() string {
	var b strings.Builder
	b.WriteString("malformed document: ")
	if e.Section != "" && e.Index >= 0 {
		fmt.Fprintf(&b, "%s[%d]: ", e.Section, e.Index)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, "field %q: %s", e.Field, e.Reason)
	} else {
		fmt.Fprintf(&b, "missing %q", e.Field)
	}
	return b.String()
}

// Code returns the error code for this error type.
func (e *MalformedDocumentError) Code() Code {
	return ErrCodeMalformedDocument
}
