package transport

import (
	"strconv"
	"strings"
)

// Response is the immutable outcome of one successful dispatch. A transport
// failure never produces a Response; it surfaces as a *TransportError from
// the dispatch call instead.
type Response struct {
	// StatusCode is the numeric HTTP status, e.g. 200 or 404. Non-2xx codes
	// are not an error at this layer; policy belongs to the caller.
	StatusCode int
	// StatusMessage is the reason phrase following the code on the status
	// line. Empty when the status line carries none.
	StatusMessage string
	// Body holds the raw response payload.
	Body []byte
	// Text is Body interpreted as an opaque 8-bit string. No charset
	// detection is performed; len(Text) always equals len(Body).
	Text string
	// RawHeader is the status line plus header block as received.
	RawHeader []byte
	// Headers maps lowercased header names to values. A repeated header
	// keeps only its last occurrence.
	Headers map[string]string
	// Cookies maps cookie names to values, extracted from every Set-Cookie
	// header in the block. Attributes such as Path or HttpOnly are dropped.
	Cookies map[string]string
}

// parseExchange turns the raw engine output into a Response. Malformed input
// never fails; parsing is best-effort.
func parseExchange(ex *Exchange) *Response {
	res := &Response{
		Body:      ex.Body,
		Text:      string(ex.Body),
		RawHeader: ex.Header,
		Headers:   make(map[string]string),
		Cookies:   make(map[string]string),
	}

	lines := strings.Split(string(ex.Header), "\n")
	if len(lines) == 0 {
		return res
	}
	res.StatusCode, res.StatusMessage = parseStatusLine(strings.TrimSuffix(lines[0], "\r"))

	for _, line := range lines[1:] {
		name, rest, ok := strings.Cut(line, ":")
		if !ok || name == "" {
			continue
		}
		name = strings.ToLower(name)
		res.Headers[name] = headerValue(rest)
		if name == "set-cookie" {
			parseSetCookie(res.Headers[name], res.Cookies)
		}
	}
	return res
}

// parseStatusLine splits "HTTP/x.y CODE REASON" into code and reason. A
// missing reason phrase yields an empty message; the code still parses.
func parseStatusLine(line string) (int, string) {
	_, rest, ok := strings.Cut(line, " ")
	if !ok {
		return 0, ""
	}
	codeStr, message, _ := strings.Cut(rest, " ")
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return 0, message
	}
	return code, message
}

// headerValue consumes exactly one space after the colon and reads up to the
// next carriage return. A line without that space yields an empty value.
// Later colons in the value are preserved untouched.
func headerValue(rest string) string {
	rest, ok := strings.CutPrefix(rest, " ")
	if !ok {
		return ""
	}
	if i := strings.IndexByte(rest, '\r'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// parseSetCookie records the cookie-pair of one Set-Cookie value. Only the
// first k=v pair is the cookie; RFC 6265 attributes (Path=/, Expires=...,
// bare flags like HttpOnly) are discarded.
func parseSetCookie(value string, cookies map[string]string) {
	pair, _, _ := strings.Cut(value, ";")
	name, val, ok := strings.Cut(pair, "=")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	cookies[name] = strings.TrimSpace(val)
}
