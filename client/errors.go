package client

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies a client failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransportConstruction means the client could not be built.
	KindTransportConstruction
	// KindRequestBuild means the request could not be assembled (bad URL or header value).
	KindRequestBuild
	// KindTransport means the request did not complete: connection, DNS, TLS or body read failures.
	KindTransport
	// KindSerialization means a body could not be encoded to or decoded from JSON.
	KindSerialization
	// KindUnexpectedStatus means the server answered with a status outside the operation's success set.
	KindUnexpectedStatus
)

func (k Kind) String() string {
	switch k {
	case KindTransportConstruction:
		return "transport construction failure"
	case KindRequestBuild:
		return "request build failure"
	case KindTransport:
		return "transport failure"
	case KindSerialization:
		return "serialization failure"
	case KindUnexpectedStatus:
		return "unexpected status"
	default:
		return "unknown failure"
	}
}

// Error is returned by every fallible client operation.
type Error struct {
	Kind Kind

	// Op names the failed operation, e.g. "GET /v1/info".
	Op string

	// StatusCode is set for KindUnexpectedStatus.
	StatusCode int

	Err error
}

// Sentinels for errors.Is. They match any Error of the same Kind.
var (
	ErrTransportConstruction = &Error{Kind: KindTransportConstruction}
	ErrRequestBuild          = &Error{Kind: KindRequestBuild}
	ErrTransport             = &Error{Kind: KindTransport}
	ErrSerialization         = &Error{Kind: KindSerialization}
	ErrUnexpectedStatus      = &Error{Kind: KindUnexpectedStatus}
)

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	var msg string
	if e.Kind == KindUnexpectedStatus {
		msg = fmt.Sprintf("x0 returned an unexpected status code: %d", e.StatusCode)
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Kind, e.Err)
	} else {
		msg = e.Kind.String()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on StatusCode when the target carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// KindOf returns the Kind of err, or KindUnknown if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsUnexpectedStatus reports whether err is a KindUnexpectedStatus error.
func IsUnexpectedStatus(err error) bool {
	return KindOf(err) == KindUnexpectedStatus
}

// StatusCode extracts the HTTP status carried by an unexpected status error.
func StatusCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUnexpectedStatus {
		return e.StatusCode, true
	}
	return 0, false
}
