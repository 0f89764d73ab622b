// Package apperr define la taxonomía de errores que los servicios devuelven
// y que la capa HTTP traduce a códigos de estado.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinels de storage. Los adapters (memory/postgres) envuelven estos.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type Kind string

const (
	KindInternal     Kind = "internal"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidState Kind = "invalid_state"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
)

// Error es un error de dominio con mensaje apto para el cliente.
type Error struct {
	Kind    Kind
	Message string
	// Fields lista errores por campo ("password: ...") en fallas de validación.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error     { return newf(KindNotFound, format, args...) }
func Conflict(format string, args ...any) *Error     { return newf(KindConflict, format, args...) }
func InvalidInput(format string, args ...any) *Error { return newf(KindInvalidInput, format, args...) }
func InvalidState(format string, args ...any) *Error { return newf(KindInvalidState, format, args...) }
func Unauthorized(format string, args ...any) *Error { return newf(KindUnauthorized, format, args...) }
func Forbidden(format string, args ...any) *Error    { return newf(KindForbidden, format, args...) }

// Validation arma un InvalidInput con lista de errores por campo.
func Validation(fields []string) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Validation failed", Fields: fields}
}

// KindOf clasifica cualquier error. Los sentinels de storage sin envolver
// en *Error también se reconocen.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

// Is reporta si err es de la clase kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
