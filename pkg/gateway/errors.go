package gateway

import (
	"errors"
	"fmt"
)

// ErrEmptyResult indicates the model finished without producing the part the
// caller asked for (no image in an edit response, no text in a draft).
var ErrEmptyResult = errors.New("gateway: model returned no usable output")

// TransportError wraps a failure from the underlying API call. Op names the
// gateway operation so logs stay attributable after the error crosses
// package boundaries.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError indicates the model produced output that does not match the
// declared response schema. Raw carries the offending payload for debugging.
type ParseError struct {
	Op  string
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gateway: %s: response does not match schema: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
