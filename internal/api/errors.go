package api

import "fmt"

// FormatError indicates the response carried data that does not match the
// expected shape: neither a payload object nor a JSON-encoded string of
// one, or a payload with required fields missing.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed response data: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
