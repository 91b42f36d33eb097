// Package errors provides a structured error type with wrapping and a stable wire code
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-facing error code sent to API clients.
// Values are part of the wire contract; add sparingly
type ErrorCode string

const (
	// ErrorCodeInternal is for unclassified failures and recovered panics
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"

	// ErrorCodeValidation is for malformed client input, JSON included
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrorCodeNoData is for queries that succeeded but matched nothing
	ErrorCodeNoData ErrorCode = "NO_DATA"

	// ErrorCodeDB is for failed store executions
	ErrorCodeDB ErrorCode = "DATABASE_ERROR"

	// ErrorCodeNotFound is for unknown routes and methods
	ErrorCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrorCodeUnavailable is for dependencies that are not ready yet
	ErrorCodeUnavailable ErrorCode = "UNAVAILABLE"
)

// Generic client-facing messages for codes whose cause stays server side
const (
	MsgInternal = "Internal server error"
	MsgDB       = "Database query failed"
	MsgNoData   = "No data found for specified filters"
	MsgNotFound = "Endpoint not found"
)

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeNoData, ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is the structured error type.
// msg is client facing; cause is the wrapped error and never leaves the process
type Error struct {
	cause error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the JSON error body returned by the API
type Wire struct {
	Error string    `json:"error"`
	Code  ErrorCode `json:"code"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the client facing message without the cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending input field, if any
func (e *Error) Field() string { return e.field }

// ToWire converts an *Error to a Wire payload
func (e *Error) ToWire() Wire { return Wire{Error: e.msg, Code: e.code} }

// WireFrom converts any error into a Wire payload.
// Foreign errors never leak their text; they become a generic internal error
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Error: MsgInternal, Code: ErrorCodeInternal}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Internal
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeInternal
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField attaches the offending field to an *Error (copy-on-write).
// Foreign errors are returned unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps cause with code and message
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf returns a new *Error that wraps cause with code and formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// NoData returns the empty result error
func NoData() error { return New(ErrorCodeNoData, MsgNoData) }

// Database wraps a store failure behind the generic client message
func Database(cause error) error { return Wrap(cause, ErrorCodeDB, MsgDB) }

// Internal wraps an unexpected failure behind the generic client message
func Internal(cause error) error { return Wrap(cause, ErrorCodeInternal, MsgInternal) }

// NotFound returns the unknown route error
func NotFound() error { return New(ErrorCodeNotFound, MsgNotFound) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// HTTP bundles status + wire in one shot
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}
