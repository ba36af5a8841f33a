package transport

import "testing"

func parse(t *testing.T, header, body string) *Response {
	t.Helper()
	return parseExchange(&Exchange{Header: []byte(header), Body: []byte(body)})
}

func TestParseStatusLine(t *testing.T) {
	res := parse(t, "HTTP/1.1 404 Not Found\r\n\r\n", "")
	if res.StatusCode != 404 {
		t.Fatalf("status code = %d, want 404", res.StatusCode)
	}
	if res.StatusMessage != "Not Found" {
		t.Fatalf("status message = %q, want %q", res.StatusMessage, "Not Found")
	}
}

func TestParseStatusLineWithoutReason(t *testing.T) {
	res := parse(t, "HTTP/1.1 200\r\n\r\n", "")
	if res.StatusCode != 200 {
		t.Fatalf("status code = %d, want 200", res.StatusCode)
	}
	if res.StatusMessage != "" {
		t.Fatalf("status message = %q, want empty", res.StatusMessage)
	}
}

func TestParseHeadersLowercasedLastWins(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nFoo: bar\r\nX-Dup: first\r\nx-dup: second\r\n\r\n", "")
	if got := res.Headers["foo"]; got != "bar" {
		t.Fatalf("foo = %q, want bar", got)
	}
	if got := res.Headers["x-dup"]; got != "second" {
		t.Fatalf("x-dup = %q, want second (last occurrence)", got)
	}
	for name := range res.Headers {
		for _, c := range name {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("header name %q is not lowercased", name)
			}
		}
	}
}

func TestParseHeaderValueKeepsLaterColons(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nLocation: https://example.com/a:b\r\nDate: Mon, 02 Jan 2006 15:04:05 GMT\r\n\r\n", "")
	if got := res.Headers["location"]; got != "https://example.com/a:b" {
		t.Fatalf("location = %q", got)
	}
	if got := res.Headers["date"]; got != "Mon, 02 Jan 2006 15:04:05 GMT" {
		t.Fatalf("date = %q", got)
	}
}

func TestParseHeaderWithoutSpaceYieldsEmptyValue(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nFoo:bar\r\n\r\n", "")
	if got, ok := res.Headers["foo"]; !ok || got != "" {
		t.Fatalf("foo = %q (present %v), want empty value", got, ok)
	}
}

func TestParseSetCookieKeepsPairDropsAttributes(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nSet-Cookie: sid=abc; Path=/; HttpOnly\r\n\r\n", "")
	if got := res.Cookies["sid"]; got != "abc" {
		t.Fatalf("sid = %q, want abc", got)
	}
	if _, ok := res.Cookies["Path"]; ok {
		t.Fatalf("Path attribute recorded as a cookie: %v", res.Cookies)
	}
	if _, ok := res.Cookies["HttpOnly"]; ok {
		t.Fatalf("HttpOnly attribute recorded as a cookie: %v", res.Cookies)
	}
}

func TestParseRepeatedSetCookieCollectsEveryCookie(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nSet-Cookie: a=1; Path=/\r\nSet-Cookie: b=2\r\n\r\n", "")
	if res.Cookies["a"] != "1" || res.Cookies["b"] != "2" {
		t.Fatalf("cookies = %v, want a=1 and b=2", res.Cookies)
	}
	// the header map itself keeps only the last occurrence
	if got := res.Headers["set-cookie"]; got != "b=2" {
		t.Fatalf("set-cookie header = %q, want b=2", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	res := parse(t, "HTTP/1.1 200 OK\r\nFoo: bar\r\nSet-Cookie: a=1; Path=/\r\n\r\n", "")
	if res.Headers["foo"] != "bar" {
		t.Fatalf("foo = %q", res.Headers["foo"])
	}
	if res.Cookies["a"] != "1" {
		t.Fatalf("cookie a = %q", res.Cookies["a"])
	}
}

func TestBodyTextMatchesBodyBytes(t *testing.T) {
	body := "caf\xc3\xa9 \x00 raw"
	res := parse(t, "HTTP/1.1 200 OK\r\n\r\n", body)
	if len(res.Text) != len(res.Body) {
		t.Fatalf("len(Text) = %d, len(Body) = %d", len(res.Text), len(res.Body))
	}
	if res.Text != body {
		t.Fatalf("Text = %q, want %q", res.Text, body)
	}
}

func TestParseMalformedInputIsBestEffort(t *testing.T) {
	res := parse(t, "garbage\r\nno colon line\r\n: leading colon\r\n\r\n", "x")
	if res.StatusCode != 0 {
		t.Fatalf("status code = %d, want 0", res.StatusCode)
	}
	if len(res.Headers) != 0 {
		t.Fatalf("headers = %v, want none", res.Headers)
	}
	if string(res.Body) != "x" {
		t.Fatalf("body = %q", res.Body)
	}
}
