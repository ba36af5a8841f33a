package transport

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a Request is dispatched before
// Initialize has been called.
var ErrNotInitialized = errors.New("transport: request not initialized")

// TransportError reports an engine-level failure (DNS, connect, TLS, abort).
// It is distinct from a non-2xx HTTP response, which this layer reports as a
// regular Response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
