package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means an action that needs an identity was attempted
	// without one. It is raised client-side before any network call is made.
	ErrUnauthenticated = errors.New("login required")

	// ErrElementNotFound is returned by editor operations on a stale element
	// id. Callers treat it as a benign no-op; pointer event races such as
	// delete-then-drag are expected.
	ErrElementNotFound = errors.New("design element not found")

	ErrDesignNotFound  = errors.New("design not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ValidationError reports a locally-recoverable input problem. The operation
// is never attempted against the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// APIError is a failed response from the design API. The in-memory document
// is never discarded on failure, so the caller may retry.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("design API error (status %d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether retrying the same request may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500
}
