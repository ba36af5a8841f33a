package transport

import "context"

// Exchange is the raw outcome of one engine round-trip: the status line plus
// header block as received on the wire, and the response payload.
type Exchange struct {
	Header []byte
	Body   []byte
}

// Engine abstracts the underlying HTTP transport so callers can inject mocks
// or different backends. The headers slice carries one "Key: Value" line per
// request header; the engine forwards them verbatim.
type Engine interface {
	Do(ctx context.Context, method, url string, headers []string, body []byte) (*Exchange, error)
}
