package users

import "fmt"

// StatusError reports a completed exchange whose HTTP status was outside the
// 2xx range. It carries the code and the start of the body for diagnostics.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Snippet    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("users: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Snippet)
}

// DecodeError reports a body that was expected to be a JSON document but
// could not be parsed.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("users: decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FieldMissingError reports a named-field extraction that failed because the
// field was absent or not of the expected shape.
type FieldMissingError struct {
	Endpoint string
	Field    string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("users: %s response has no usable %q field", e.Endpoint, e.Field)
}
