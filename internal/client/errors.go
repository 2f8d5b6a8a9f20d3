package client

import "fmt"

// FetchError wraps any failure of the /get_question exchange: transport
// errors, error envelopes, and malformed payloads.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching question: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// GradingError wraps any failure of the /check_answer exchange.
type GradingError struct {
	Err error
}

func (e *GradingError) Error() string {
	return fmt.Sprintf("checking answer: %v", e.Err)
}

func (e *GradingError) Unwrap() error { return e.Err }
