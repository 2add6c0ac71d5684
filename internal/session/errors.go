package session

import (
	"errors"
	"fmt"
)

// ErrSessionBusy is returned when an operation is attempted while a
// model request for this session is still outstanding. The policy is
// reject, not queue: the rejected call leaves the session untouched.
var ErrSessionBusy = errors.New("session busy: a model request is already in flight")

// ErrSessionNotActive is returned when a chat operation is attempted
// outside the active chat state.
var ErrSessionNotActive = errors.New("session has no active interview")

// ErrSessionNotFound is returned by the manager for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// ValidationError represents invalid intake input detected before any
// external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
