package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures and timeouts.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotConfigured means no backend endpoint is set.
	ErrNotConfigured = errors.New("backend endpoint not configured")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError is a non-2xx answer from the backend.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func mapError(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
