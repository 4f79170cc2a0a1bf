// Package session holds opaque login tokens in memory. The rest of the
// application consumes it only as "who, if anyone, is making this request".
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identity names a logged-in account.
type Identity struct {
	UserID string
	Email  string
}

type entry struct {
	identity  Identity
	expiresAt time.Time
}

// Store maps opaque tokens to identities with a fixed TTL.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

// NewStore creates a session store whose tokens expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Issue creates a fresh token for the identity.
func (s *Store) Issue(id Identity) string {
	token := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{
		identity:  id,
		expiresAt: s.now().Add(s.ttl),
	}
	return token
}

// Resolve returns the identity behind a token, if the token is live.
// Expired tokens are dropped on access.
func (s *Store) Resolve(token string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return Identity{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return Identity{}, false
	}
	return e.identity, true
}

// Revoke invalidates a token.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
