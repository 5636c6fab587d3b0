package client

import (
	"errors"

	sdkerrors "github.com/animalspotter/animalspotter/client/internal/errors"
	"github.com/animalspotter/animalspotter/client/internal/shardqueue"
)

// Error is the concrete type of every failure returned by Register,
// Authenticate and ListAnimals. Use errors.As to read its fields.
type Error = sdkerrors.Error

// ErrorKind classifies an Error.
type ErrorKind = sdkerrors.Kind

// Error kinds.
const (
	KindNoAuth       = sdkerrors.KindNoAuth
	KindUnauthorized = sdkerrors.KindUnauthorized
	KindHTTPStatus   = sdkerrors.KindHTTPStatus
	KindTransport    = sdkerrors.KindTransport
	KindNoData       = sdkerrors.KindNoData
	KindDecodeFailed = sdkerrors.KindDecodeFailed
	KindEncodeFailed = sdkerrors.KindEncodeFailed
)

// Sentinels for errors.Is; each matches any Error of its kind.
var (
	// ErrNoAuth: ListAnimals was called without a held token. No request was sent.
	ErrNoAuth = sdkerrors.ErrNoAuth
	// ErrUnauthorized: the server answered 401 to a bearer-token request.
	ErrUnauthorized = sdkerrors.ErrUnauthorized
	// ErrHTTPStatus: any other unexpected status; see StatusCode.
	ErrHTTPStatus = sdkerrors.ErrHTTPStatus
	// ErrTransport: the request never got an HTTP response.
	ErrTransport = sdkerrors.ErrTransport
	// ErrNoData: a required response body was empty.
	ErrNoData = sdkerrors.ErrNoData
	// ErrDecodeFailed: the response body did not have the expected shape.
	ErrDecodeFailed = sdkerrors.ErrDecodeFailed
	// ErrEncodeFailed: the request body could not be serialised.
	ErrEncodeFailed = sdkerrors.ErrEncodeFailed
)

// ErrBackPressure is returned by async calls when the executor queue is full.
var ErrBackPressure = shardqueue.ErrQueueFull

// ErrClosed is returned by async calls made after the executor was stopped.
var ErrClosed = shardqueue.ErrExecutorClosed

// KindOf returns the kind of err, or 0 if err is not an SDK error.
func KindOf(err error) ErrorKind { return sdkerrors.KindOf(err) }

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) { return sdkerrors.StatusCode(err) }

// IsRetryable hints whether trying again may succeed. The client never
// retries on its own.
func IsRetryable(err error) bool { return sdkerrors.IsRetryable(err) }

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

func outcomeLabel(err error) string {
	if k := sdkerrors.KindOf(err); k != 0 {
		return k.String()
	}
	return "other"
}
