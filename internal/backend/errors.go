package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on any 401 from the backend. The session
	// middleware reacts by clearing the stored session and redirecting.
	ErrUnauthorized = errors.New("backend: unauthorized")

	ErrNotFound = errors.New("backend: not found")
)

// StatusError carries a non-2xx backend response that is neither a 401 nor
// a 404.
type StatusError struct {
	Status int
	Code   string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend: status %d (%s)", e.Status, e.Code)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}
