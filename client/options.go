package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options only record settings; New applies them once all options have run,
// so their order does not matter. The request-ID transport always ends up
// outermost, with the debug transport (if any) beneath it.
type Option func(*Client) error

// WithHTTPClient uses a copy of hc for all requests. hc itself is not
// modified; its Transport becomes the innermost layer.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// By default no timeout is set and requests run until the context ends. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled
// is true. Authorization headers and passwords are redacted from the dumps,
// but bodies are otherwise logged in full; do not enable in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithExecutor runs async calls on a shared executor instead of a private
// one. Close does not stop a shared executor.
func WithExecutor(e Executor) Option {
	return func(c *Client) error {
		if e == nil {
			return fmt.Errorf("executor must not be nil")
		}
		c.exec = e
		c.ownsExec = false
		return nil
	}
}

// WithLogger replaces the client's logger. The session_id field is added.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l.With().Str("session_id", c.sessionID).Logger()
		return nil
	}
}
