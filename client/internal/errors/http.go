package errors

import "net/http"

// maxBodyLen bounds the response body kept on an error.
const maxBodyLen = 512

// NewNoAuth reports a call attempted without a held token.
func NewNoAuth(op string) *Error {
	return &Error{Kind: KindNoAuth, Op: op}
}

// NewHTTPError maps a non-success status to Unauthorized or HTTPStatus.
// Only operations that send a bearer token treat 401 as Unauthorized; the
// others pass bearer=false and get a plain HTTPStatus.
func NewHTTPError(op string, statusCode int, body []byte, bearer bool) *Error {
	kind := KindHTTPStatus
	if bearer && statusCode == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &Error{Kind: kind, Op: op, StatusCode: statusCode, Body: truncate(body)}
}

// NewNetworkError wraps a failure below HTTP (dial, TLS, timeout, context).
func NewNetworkError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Cause: err}
}

// NewNoData reports an empty body where one was required.
func NewNoData(op string, statusCode int) *Error {
	return &Error{Kind: KindNoData, Op: op, StatusCode: statusCode}
}

// NewDecodeError reports a body that did not parse into the expected shape.
func NewDecodeError(op string, body []byte, err error) *Error {
	return &Error{Kind: KindDecodeFailed, Op: op, Body: truncate(body), Cause: err}
}

// NewEncodeError reports an outgoing payload that could not be marshalled.
func NewEncodeError(op string, err error) *Error {
	return &Error{Kind: KindEncodeFailed, Op: op, Cause: err}
}

// IsRetryable reports whether a caller may reasonably try again:
// transport failures, 408, 429 and 5xx. The SDK itself never retries.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTransport:
		return true
	case KindHTTPStatus:
		code, _ := StatusCode(err)
		switch {
		case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
			return true
		case code >= 500 && code < 600:
			return true
		}
	}
	return false
}

func truncate(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen])
	}
	return string(body)
}
