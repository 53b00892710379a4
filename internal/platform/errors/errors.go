// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures so the CLI can pick an exit status
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeUsage is for bad flags, arguments or option values
	ErrorCodeUsage

	// ErrorCodeIO is for open/read failures, bad gzip streams and failed fetches
	ErrorCodeIO

	// ErrorCodeJSON is for malformed trace lines
	ErrorCodeJSON

	// ErrorCodeCoercion is for values that cannot be cast to the column type
	ErrorCodeCoercion

	// ErrorCodeMissingColumn is for columns a plot needs but the table lacks
	ErrorCodeMissingColumn

	// ErrorCodeRender is for failures while drawing or saving a chart
	ErrorCodeRender
)

// String returns a short lowercase name for logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeUsage:
		return "usage"
	case ErrorCodeIO:
		return "io"
	case ErrorCodeJSON:
		return "json"
	case ErrorCodeCoercion:
		return "coercion"
	case ErrorCodeMissingColumn:
		return "missing_column"
	case ErrorCodeRender:
		return "render"
	default:
		return "unknown"
	}
}

// ExitCode turns an ErrorCode into a process exit status
func ExitCode(c ErrorCode) int {
	switch c {
	case ErrorCodeUsage:
		return 2
	default:
		return 1
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (offending column); op is optional operation tag
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ExitStatus returns the mapped exit status for any error, 0 for nil
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(CodeOf(err))
}

// FieldOf returns the field of the outermost *Error carrying one
func FieldOf(err error) string {
	for err != nil {
		if e, ok := err.(*Error); ok && e.field != "" {
			return e.field
		}
		err = stderrs.Unwrap(err)
	}
	return ""
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// Usagef returns a usage error
func Usagef(format string, a ...any) error { return Newf(ErrorCodeUsage, format, a...) }

// IOf returns an I/O error
func IOf(format string, a ...any) error { return Newf(ErrorCodeIO, format, a...) }

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// Coercionf returns a coercion error for column
func Coercionf(column, format string, a ...any) error {
	return &Error{code: ErrorCodeCoercion, msg: fmt.Sprintf(format, a...), field: column}
}

// MissingColumn returns a missing column error naming column
func MissingColumn(column string) error {
	return &Error{code: ErrorCodeMissingColumn, msg: fmt.Sprintf("column %q not found", column), field: column}
}

// Renderf returns a render error
func Renderf(format string, a ...any) error { return Newf(ErrorCodeRender, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
