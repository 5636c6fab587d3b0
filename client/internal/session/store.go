// Package session holds the bearer token acquired by authenticate.
package session

import (
	"sync"

	"github.com/animalspotter/animalspotter/client/internal/types"
)

// Store is the mutable half of a client: the token, guarded by a mutex.
// Writes are last-writer-wins; the zero value is an empty, usable store.
type Store struct {
	mu    sync.RWMutex
	token types.AuthToken
}

// Get returns the held token and whether one is present.
func (s *Store) Get() (types.AuthToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, !s.token.IsZero()
}

// Set replaces the held token. An empty token clears the store.
func (s *Store) Set(tok types.AuthToken) {
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
}

// Clear drops the held token.
func (s *Store) Clear() {
	s.Set(types.AuthToken{})
}
