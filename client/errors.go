package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned when the upstream rate limits requests.
	ErrRateLimited = errors.New("rate limited by upstream")
	// ErrUpstreamDown is returned for 5xx responses and open circuits.
	ErrUpstreamDown = errors.New("upstream unavailable")
)

// HTTPError represents an unexpected HTTP error response.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}

// IsNotFound returns true if the error represents a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == 404
}
