package wordpress

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the provided application password was rejected
var ErrUnauthorized = errors.New("wordpress credentials rejected")

// ErrTimeout indicates a single request exceeded the configured timeout
var ErrTimeout = errors.New("wordpress request timed out")

// StatusError represents a non-2xx response from the WordPress API.
// The body is kept for diagnosis since WordPress returns JSON error
// envelopes with a code and message.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
