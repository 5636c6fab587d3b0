package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/animalspotter/animalspotter/client/internal/api"
	"github.com/animalspotter/animalspotter/client/internal/session"
	"github.com/animalspotter/animalspotter/client/internal/shardqueue"
)

// DefaultBaseURL is the production AnimalSpotter endpoint.
const DefaultBaseURL = "https://lambdaanimalspotter.vapor.cloud/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the AnimalSpotter service. It holds the bearer token
// obtained by Authenticate for as long as the Client lives; nothing is
// persisted. A Client is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	rest      *resty.Client
	exec      executor
	ownsExec  bool
	session   session.Store
	sessionID string
	logger    zerolog.Logger

	// set by options, applied once all options have run
	timeout time.Duration
	debug   bool

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the service rooted at baseURL, for example
// "https://lambdaanimalspotter.vapor.cloud/api". Route paths are appended
// to it.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		sessionID: id,
		logger:    log.With().Str("component", "animalspotter-client").Str("session_id", id).Logger(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		c.debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, logger: c.logger}
	}
	// Outermost, so debug dumps already carry the request ID.
	c.http.Transport = &requestIDTransport{base: c.http.Transport}

	if c.exec == nil {
		exec, err := newDefaultExecutor(c.logger)
		if err != nil {
			return nil, err
		}
		c.exec = exec
		c.ownsExec = true
	}

	c.rest = api.NewRestClient(c.http, c.baseURL, c.logger)
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("baseURL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid baseURL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid baseURL %q: want http(s)://host[/path]", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// requestIDTransport stamps every outgoing request with a fresh X-Request-ID.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	if cloned.Header.Get("X-Request-ID") == "" {
		cloned.Header.Set("X-Request-ID", uuid.NewString())
	}
	return base.RoundTrip(cloned)
}

// newDefaultExecutor builds the private executor used for async calls. A
// private executor only ever sees this client's session key, so one shard
// is enough.
func newDefaultExecutor(logger zerolog.Logger) (*shardqueue.ShardExecutor, error) {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("executor config: %w", err)
	}
	cfg.Shards = 1
	cfg.ErrorHandler = func(err error) {
		logger.Debug().Err(err).Msg("async call finished with error")
	}
	return shardqueue.NewShardExecutor(cfg), nil
}

// Close stops the private executor after draining queued async calls. An
// executor injected with WithExecutor is left running. Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil && c.ownsExec {
		c.exec.Stop()
	}
	return nil
}

// BaseURL returns the service root this client was built for.
func (c *Client) BaseURL() string { return c.baseURL }

// SessionID identifies this client instance in logs and executor keys.
func (c *Client) SessionID() string { return c.sessionID }

// --------------------------------------------------------------------
// Session state
// --------------------------------------------------------------------

// Token returns the held bearer token, if any.
func (c *Client) Token() (AuthToken, bool) { return c.session.Get() }

// SetToken installs a token obtained elsewhere. An empty token clears.
func (c *Client) SetToken(tok AuthToken) { c.session.Set(tok) }

// ClearToken forgets the held token; ListAnimals fails with ErrNoAuth
// until the next successful Authenticate.
func (c *Client) ClearToken() { c.session.Clear() }

// IsAuthenticated reports whether a token is held. It says nothing about
// whether the server still accepts it.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.session.Get()
	return ok
}

// --------------------------------------------------------------------
// Service operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates an account for creds. The server's 200 response body is
// ignored.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	start := time.Now()
	err := api.Register(ctx, c.rest, creds)
	c.observe(api.OpRegister, start, err)
	return err
}

// Authenticate logs in with creds and stores the returned token, replacing
// any previous one. On failure the previously held token is kept.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) error {
	start := time.Now()
	tok, err := api.Authenticate(ctx, c.rest, creds)
	if err == nil {
		c.session.Set(*tok)
	}
	c.observe(api.OpAuthenticate, start, err)
	return err
}

// ListAnimals returns every animal name the service knows, in server order.
// Without a held token it fails with ErrNoAuth and sends no request. A 401
// from the server is ErrUnauthorized; the held token is not cleared.
func (c *Client) ListAnimals(ctx context.Context) ([]AnimalName, error) {
	start := time.Now()
	tok, _ := c.session.Get()
	names, err := api.ListAnimals(ctx, c.rest, tok)
	c.observe(api.OpListAnimals, start, err)
	return names, err
}

func (c *Client) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := "ok"
	if err != nil {
		outcome = outcomeLabel(err)
	}
	requestsTotal.WithLabelValues(op, outcome).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	ev := c.logger.Debug()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Str("op", op).Str("outcome", outcome).Dur("elapsed", elapsed).Msg("animalspotter call")
}
