package api

import (
	"encoding/json"
	"errors"
)

// ErrorKind tells HTTP-status failures apart from transport and codec failures.
type ErrorKind string

const (
	KindHTTP      ErrorKind = "http"
	KindTransport ErrorKind = "transport"
	KindDecode    ErrorKind = "decode"
	KindEncode    ErrorKind = "encode"
)

// Error is the failure half of a Result.
type Error struct {
	Kind       ErrorKind
	Status     int
	StatusText string
	Message    string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Result is the per-call envelope. Exactly one of Data or Err is meaningful once Loading is false.
type Result struct {
	Data    any
	Raw     json.RawMessage
	Loading bool
	Err     *Error
}

// OK reports whether the call settled without an error.
func (r *Result) OK() bool { return r != nil && r.Err == nil }

// ErrorMessage returns the error text, or "" for a successful call.
func (r *Result) ErrorMessage() string {
	if r == nil || r.Err == nil {
		return ""
	}
	return r.Err.Message
}

// Decode unmarshals the raw response payload into v.
func (r *Result) Decode(v any) error {
	if r == nil {
		return errors.New("nil result")
	}
	if r.Err != nil {
		return r.Err
	}
	return json.Unmarshal(r.Raw, v)
}
