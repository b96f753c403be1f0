package judge0

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a client failure.
type ErrorKind string

const (
	// ErrorKindRequestFailed covers transport failures: connection
	// refused, timeout, TLS errors, cancelled contexts, and responses
	// that could not be read.
	ErrorKindRequestFailed ErrorKind = "request_failed"

	// ErrorKindSerializationFailed covers request bodies that could not
	// be JSON-encoded and response bodies that do not match the
	// operation's declared result shape.
	ErrorKindSerializationFailed ErrorKind = "serialization_failed"

	// ErrorKindInvalidHeaderName means a configured header field name
	// contains characters that are illegal in HTTP headers.
	ErrorKindInvalidHeaderName ErrorKind = "invalid_header_name"

	// ErrorKindInvalidHeaderValue means a configured token contains
	// characters that are illegal in an HTTP header value.
	ErrorKindInvalidHeaderValue ErrorKind = "invalid_header_value"
)

// Error is the only error type returned by Client operations. Every
// failure is one of the four kinds above; header and serialization
// failures are detected before any network I/O happens.
type Error struct {
	Kind ErrorKind

	// Detail carries the offending header name or value for the header
	// kinds, and a short context string otherwise.
	Detail string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying transport or codec error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// NewRequestError wraps a transport-level failure.
func NewRequestError(cause error) *Error {
	return &Error{Kind: ErrorKindRequestFailed, cause: cause}
}

// NewRequestErrorf creates a transport-level failure with no underlying
// cause, such as a rejected credential check.
func NewRequestErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindRequestFailed, Detail: fmt.Sprintf(format, args...)}
}

// NewSerializationError wraps an encode or decode failure.
func NewSerializationError(cause error) *Error {
	return &Error{Kind: ErrorKindSerializationFailed, cause: cause}
}

// NewInvalidHeaderNameError reports an illegal configured header name.
func NewInvalidHeaderNameError(name string) *Error {
	return &Error{Kind: ErrorKindInvalidHeaderName, Detail: name}
}

// NewInvalidHeaderValueError reports an illegal configured header value.
func NewInvalidHeaderValueError(value string) *Error {
	return &Error{Kind: ErrorKindInvalidHeaderValue, Detail: value}
}
