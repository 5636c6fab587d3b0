// Package devmode serves an in-memory stand-in for the AnimalSpotter API so the
// client and CLI can be exercised without the hosted service.
//
// Nothing here is meant for production: users live in memory and tokens are
// signed with a well-known key unless WithSigningKey says otherwise.
package devmode

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// SigningKey is the default HS256 key for dev-mode tokens. It is
// intentionally obvious and must never be used in production.
const SigningKey = "LOCAL_DEV_MODE_NOT_FOR_PRODUCTION"

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

// DefaultAnimals is the list served by /animals/all unless WithAnimals is used.
var DefaultAnimals = []string{
	"Lion",
	"Tiger",
	"Bear",
	"Zebra",
	"Giraffe",
	"Elephant",
	"Hippopotamus",
	"Rhinoceros",
}

// Server is an http.Handler implementing the signup, login and animal list
// routes.
type Server struct {
	router  *mux.Router
	users   *userStore
	tokens  *tokenIssuer
	animals []string
	prefix  string
}

// ServerOption customises a Server.
type ServerOption func(*Server)

// WithAnimals replaces the served animal list. A nil slice serves "[]".
func WithAnimals(animals []string) ServerOption {
	return func(s *Server) {
		s.animals = append([]string{}, animals...)
	}
}

// WithSigningKey sets the HS256 key used to sign and verify tokens.
func WithSigningKey(key []byte) ServerOption {
	return func(s *Server) {
		if len(key) > 0 {
			s.tokens.key = append([]byte(nil), key...)
		}
	}
}

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.tokens.ttl = d
		}
	}
}

// WithPathPrefix mounts the routes under prefix, e.g. "/api" to mirror the
// hosted service layout.
func WithPathPrefix(prefix string) ServerOption {
	return func(s *Server) {
		s.prefix = "/" + strings.Trim(prefix, "/")
		if s.prefix == "/" {
			s.prefix = ""
		}
	}
}

// NewServer builds a Server with an empty user table.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		users:   newUserStore(),
		tokens:  newTokenIssuer([]byte(SigningKey), DefaultTokenTTL),
		animals: append([]string{}, DefaultAnimals...),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(recoveryMiddleware, metricsMiddleware)

	router.HandleFunc(s.prefix+"/users/signup", s.handleSignup).Methods(http.MethodPost)
	router.HandleFunc(s.prefix+"/users/login", s.handleLogin).Methods(http.MethodPost)
	router.HandleFunc(s.prefix+"/animals/all", s.handleListAnimals).Methods(http.MethodGet)

	return router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Prefix returns the path prefix the routes are mounted under.
func (s *Server) Prefix() string { return s.prefix }
