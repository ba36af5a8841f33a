// Package transport owns one logical HTTP transaction: it builds a request
// from a URL, header map and cookie map, dispatches it through an Engine, and
// parses the raw status line, header block and Set-Cookie directives into a
// structured Response.
package transport

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultTimeout bounds a dispatch through the default engine.
const DefaultTimeout = 15 * time.Second

// Request is a mutable builder for one HTTP exchange. It is reusable: the
// per-dispatch header list is rebuilt from scratch on every dispatch, so
// state from an earlier call never leaks into a later one. A Request must be
// touched by at most one goroutine at a time.
type Request struct {
	url     string
	body    []byte
	headers map[string]string
	cookies map[string]string

	engine      Engine
	initialized bool
}

// NewRequest builds a Request for the given URL with an empty body.
func NewRequest(url string) *Request {
	return NewRequestWithHeaders(url, nil, nil)
}

// NewRequestWithBody builds a Request carrying the given payload.
func NewRequestWithBody(url string, body []byte) *Request {
	return NewRequestWithHeaders(url, body, nil)
}

// NewRequestWithHeaders builds a Request with an initial header map. The map
// is copied, so later mutation of the argument does not affect the Request.
func NewRequestWithHeaders(url string, body []byte, headers map[string]string) *Request {
	r := &Request{
		url:     url,
		body:    body,
		headers: make(map[string]string, len(headers)),
		cookies: make(map[string]string),
	}
	for k, v := range headers {
		r.headers[k] = v
	}
	return r
}

// SetEngine injects the transport backend. Call before Initialize; when no
// engine is injected, Initialize binds the default resty engine.
func (r *Request) SetEngine(e Engine) { r.engine = e }

// Initialize readies the underlying transport. It must be called before any
// dispatch; dispatching an uninitialized Request fails with ErrNotInitialized.
func (r *Request) Initialize() error {
	if r.engine == nil {
		r.engine = NewRestyEngine(DefaultTimeout)
	}
	r.initialized = true
	return nil
}

// SetURL replaces the request URL.
func (r *Request) SetURL(url string) { r.url = url }

// SetBody replaces the request payload.
func (r *Request) SetBody(body []byte) { r.body = body }

// SetHeader sets a header; re-setting the same key overwrites the value.
func (r *Request) SetHeader(key, value string) { r.headers[key] = value }

// SetCookie sets a cookie; re-setting the same name overwrites the value.
func (r *Request) SetCookie(name, value string) { r.cookies[name] = value }

// RemoveHeader deletes a header. No-op when the key is absent.
func (r *Request) RemoveHeader(key string) { delete(r.headers, key) }

// RemoveCookie deletes a cookie. No-op when the name is absent.
func (r *Request) RemoveCookie(name string) { delete(r.cookies, name) }

// URL returns the current request URL.
func (r *Request) URL() string { return r.url }

// Body returns the current request payload.
func (r *Request) Body() []byte { return r.body }

// Headers returns the live header map. Callers must not mutate it while a
// dispatch is in flight.
func (r *Request) Headers() map[string]string { return r.headers }

// Cookies returns the live cookie map. Callers must not mutate it while a
// dispatch is in flight.
func (r *Request) Cookies() map[string]string { return r.cookies }

// Get dispatches the request with the GET method.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	return r.dispatch(ctx, http.MethodGet)
}

// Post dispatches the request with the POST method.
func (r *Request) Post(ctx context.Context) (*Response, error) {
	return r.dispatch(ctx, http.MethodPost)
}

// Do dispatches the request with a caller-supplied method token. The token
// is not validated.
func (r *Request) Do(ctx context.Context, method string) (*Response, error) {
	return r.dispatch(ctx, method)
}

func (r *Request) dispatch(ctx context.Context, method string) (*Response, error) {
	if !r.initialized || r.engine == nil {
		return nil, ErrNotInitialized
	}
	headers := r.prepare()
	ex, err := r.engine.Do(ctx, method, r.url, headers, r.body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: r.url, Err: err}
	}
	return parseExchange(ex), nil
}

// prepare rebuilds the engine header list from the current header and cookie
// maps. The list is recreated on every dispatch, never appended to.
func (r *Request) prepare() []string {
	list := make([]string, 0, len(r.headers)+1)

	keys := make([]string, 0, len(r.headers))
	for k := range r.headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		list = append(list, k+": "+r.headers[k])
	}

	// One aggregated Cookie header, emitted even when the cookie map is empty.
	var cookie strings.Builder
	cookie.WriteString("Cookie: ")
	names := make([]string, 0, len(r.cookies))
	for n := range r.cookies {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		cookie.WriteString(n)
		cookie.WriteString("=")
		cookie.WriteString(r.cookies[n])
		cookie.WriteString("; ")
	}
	return append(list, cookie.String())
}
