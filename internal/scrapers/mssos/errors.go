package mssos

import "fmt"

// RequestError is returned when an outbound request fails at the transport
// level or comes back with a non-success status.
type RequestError struct {
	Method string
	Url    string
	// Status is 0 when no response was received.
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request %s %s: %v", e.Method, e.Url, e.Err)
	}
	return fmt.Sprintf("request %s %s: status %d", e.Method, e.Url, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a JSON envelope does not have the expected
// shape.
type DecodeError struct {
	Stage string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExtractionError is returned when a detail page cannot be read at all.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract detail page: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
