package domain

import (
	"errors"
	"fmt"
)

// ErrServerUnreachable indicates the library server could not be reached.
var ErrServerUnreachable = errors.New("library server is unreachable")

// APIError is a non-2xx response from the server. Message carries the
// server's {message} envelope when present and is surfaced verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// ConflictError is a domain conflict reported by the server, such as
// creating a book that already exists. It is distinct from a generic
// mutation failure so callers can surface the exact server message.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// FetchError wraps a failed collection read. The prior snapshot is kept.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed write. The caller's draft is preserved so the
// user can retry without re-entering data.
type MutationError struct {
	Err error
}

func (e *MutationError) Error() string { return "mutation failed: " + e.Err.Error() }
func (e *MutationError) Unwrap() error { return e.Err }

// ServerMessage extracts the user-facing message from an API error chain,
// or returns the empty string when the server provided none.
func ServerMessage(err error) string {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
