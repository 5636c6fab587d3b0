package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog"
)

// debugTransport logs a dump of every request and response at debug level.
//
// Enable it with WithDebugLogging(true), ANIMALSPOTTER_DEBUG=true or
// DEBUG=true. It sits beneath the request-ID transport, so dumps include the
// X-Request-ID that the server sees. Bearer tokens and the password field of
// credential bodies are masked before logging.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	rid := req.Header.Get("X-Request-ID")

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", rid).
			Str("request_dump", redact(reqDump)).
			Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Str("request_id", rid).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", rid).
			Int("status_code", resp.StatusCode).
			Str("response_dump", redact(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

var (
	authHeaderRe = regexp.MustCompile(`(?im)^(Authorization:[ \t]*\S+)[ \t]+\S+`)
	passwordRe   = regexp.MustCompile(`("password"\s*:\s*)"(?:[^"\\]|\\.)*"`)
	tokenRe      = regexp.MustCompile(`("token"\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

// redact masks bearer tokens and passwords in an HTTP dump.
func redact(dump []byte) string {
	out := authHeaderRe.ReplaceAll(dump, []byte("$1 [REDACTED]"))
	out = passwordRe.ReplaceAll(out, []byte(`$1"[REDACTED]"`))
	out = tokenRe.ReplaceAll(out, []byte(`$1"[REDACTED]"`))
	return string(out)
}

// debugLoggingRequested checks if HTTP debug logging should be enabled:
// ANIMALSPOTTER_DEBUG=true or DEBUG=true (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("ANIMALSPOTTER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
