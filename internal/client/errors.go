package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the server never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses and client-side auth
	// preconditions (not logged in, missing role).
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a message the server intends to be shown to the
// user, typically from a 400 or 422 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StatusError reports a non-2xx response that carried no usable detail.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}
