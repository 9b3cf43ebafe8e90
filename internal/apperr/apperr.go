// Package apperr defines the HTTP-surface error taxonomy from spec.md §7:
// bad request, not found, upstream failure, and internal error. Storage and
// bootstrap dispositions are handled elsewhere (logged directly; bootstrap
// failures abort start-up rather than flowing through this type).
package apperr

import (
	"fmt"
	"net/http"
)

// Kind identifies which of the four HTTP-mapped error dispositions an Error
// carries.
type Kind int

const (
	// BadRequest maps to 400: a required query parameter was missing.
	BadRequest Kind = iota
	// NotFound maps to 404: tree navigation found nothing at the path.
	NotFound
	// Upstream maps to 502: the proxy or an outbound call failed.
	Upstream
	// Internal maps to 500: worker-pool join failure, body-read failure.
	Internal
)

// Error is the single error type the HTTP surface maps to a status code
// and a JSON {"message": ...} body.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status returns the HTTP status code for e.Kind.
func (e *Error) Status() int {
	switch e.Kind {
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Upstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// BadRequestf builds a BadRequest error with a formatted message.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: BadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf builds an Upstream error with a formatted message.
func Upstreamf(format string, args ...any) *Error {
	return &Error{Kind: Upstream, Message: fmt.Sprintf(format, args...)}
}

// Internalf builds an Internal error with a formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}
