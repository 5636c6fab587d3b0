package devmode

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var errUserExists = errors.New("username already taken")

// userStore keeps bcrypt hashes keyed by username.
type userStore struct {
	mu     sync.RWMutex
	hashes map[string][]byte
}

func newUserStore() *userStore {
	return &userStore{hashes: make(map[string][]byte)}
}

func (u *userStore) create(username, password string) error {
	// Hash outside the lock; bcrypt is slow on purpose.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.hashes[username]; ok {
		return errUserExists
	}
	u.hashes[username] = hash
	return nil
}

func (u *userStore) verify(username, password string) bool {
	u.mu.RLock()
	hash, ok := u.hashes[username]
	u.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
