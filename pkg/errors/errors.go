// Package errors carries the typed error taxonomy the HTTP layer translates
// for clients. Services return *Error values; everything else is treated as an
// internal failure.
package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code identifies an error class on the wire.
type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeRateLimit    Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeDependency   Code = "DEPENDENCY_ERROR"
)

// Error is the typed error services hand back. The zero-value receiver is
// safe; a nil *Error reads as internal.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap attaches a code and a caller-facing message to an underlying cause.
func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// WithDetails attaches structured detail for codes whose metadata permits
// exposing it (validation field maps, mostly).
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As digs a typed *Error out of an error chain, or returns nil when there is
// none. Callers branch on the result instead of errors.As boilerplate.
func As(err error) *Error {
	var typed *Error
	if err != nil && stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Metadata describes how a code is rendered over HTTP.
//
// ExposeMessage marks codes whose condition the caller caused: for those the
// typed message replaces the generic fallback. Internal and dependency
// failures never leak their message.
type Metadata struct {
	HTTPStatus     int
	PublicMessage  string
	ExposeMessage  bool
	DetailsAllowed bool
}

var wireMetadata = map[Code]Metadata{
	CodeValidation:   {http.StatusBadRequest, "validation failed", true, true},
	CodeUnauthorized: {http.StatusUnauthorized, "authentication required", true, false},
	CodeForbidden:    {http.StatusForbidden, "insufficient permissions", true, false},
	CodeNotFound:     {http.StatusNotFound, "resource not found", true, false},
	CodeConflict:     {http.StatusConflict, "conflict detected", true, false},
	CodeRateLimit:    {http.StatusTooManyRequests, "rate limit exceeded", true, false},
	CodeInternal:     {http.StatusInternalServerError, "internal server error", false, false},
	CodeDependency:   {http.StatusServiceUnavailable, "dependency unavailable", false, true},
}

// MetadataFor maps a code to its wire rendering; unknown codes render as
// internal failures.
func MetadataFor(code Code) Metadata {
	if meta, ok := wireMetadata[code]; ok {
		return meta
	}
	return wireMetadata[CodeInternal]
}
