// Package apperr carries the error taxonomy shared by the rule layer and the
// HTTP boundary. Every rule failure is an *Error with a Kind; the boundary
// maps kinds to status codes without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary handling.
type Kind int

const (
	// KindUnknown is any error that carries no explicit kind.
	KindUnknown Kind = iota
	// KindUnauthorized covers missing or insufficient roles.
	KindUnauthorized
	// KindNotFound covers missing products and orders.
	KindNotFound
	// KindValidation covers rejected input: ambiguous or missing stock
	// direction, insufficient stock, inactive product.
	KindValidation
	// KindEmptyResult marks listings that treat an empty result set as a
	// failure rather than an empty list.
	KindEmptyResult
)

// Error is a tagged error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New creates a tagged error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a tagged error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates an unauthorized error with the standard message.
func Unauthorized() *Error {
	return New(KindUnauthorized, "unauthorized user")
}

// KindOf returns the kind of an error, or KindUnknown for untagged errors.
// Wrapped errors are unwrapped first.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
