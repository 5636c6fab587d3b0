// Package errors defines the closed set of failure kinds the client SDK
// reports. Every error returned by an API call is an *Error.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies which failure path produced an error.
type Kind int

const (
	// KindNoAuth means the call needs a token and none is held. No request
	// was sent.
	KindNoAuth Kind = iota + 1

	// KindUnauthorized means the server rejected the bearer token (HTTP 401).
	KindUnauthorized

	// KindHTTPStatus is any other unexpected status code.
	KindHTTPStatus

	// KindTransport covers DNS, connection, TLS, timeout and context errors.
	KindTransport

	// KindNoData means a body was expected but the response had none.
	KindNoData

	// KindDecodeFailed means a body was present but did not parse.
	KindDecodeFailed

	// KindEncodeFailed means the outgoing payload could not be serialised.
	KindEncodeFailed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNoAuth:
		return "NoAuth"
	case KindUnauthorized:
		return "Unauthorized"
	case KindHTTPStatus:
		return "HTTPStatus"
	case KindTransport:
		return "Transport"
	case KindNoData:
		return "NoData"
	case KindDecodeFailed:
		return "DecodeFailed"
	case KindEncodeFailed:
		return "EncodeFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the typed payload carried by every SDK failure.
type Error struct {
	Kind       Kind
	Op         string // "register", "authenticate", "list animals"
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // Truncated response body for debugging
	Cause      error  // The original error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so sentinels such as
// ErrUnauthorized work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons. They carry no payload.
var (
	ErrNoAuth       = &Error{Kind: KindNoAuth}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrHTTPStatus   = &Error{Kind: KindHTTPStatus}
	ErrTransport    = &Error{Kind: KindTransport}
	ErrNoData       = &Error{Kind: KindNoData}
	ErrDecodeFailed = &Error{Kind: KindDecodeFailed}
	ErrEncodeFailed = &Error{Kind: KindEncodeFailed}
)

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var e *Error
	if stderrors.As(err, &e) && e.StatusCode > 0 {
		return e.StatusCode, true
	}
	return 0, false
}
