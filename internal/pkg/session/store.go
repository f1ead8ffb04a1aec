// Package session implements the server-side session store backing the auth
// endpoints. Sessions are keyed by an opaque token handed to the client in a
// cookie; the server keeps the authenticated identity.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the identity established by a successful login.
type Session struct {
	UserID    int64
	Nome      string
	ExpiresAt time.Time
}

// Store is an in-memory session store guarded by a mutex. Tokens are
// unguessable uuids; expired entries are purged lazily on access.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
	now      func() time.Time
}

// NewStore creates a session store whose sessions live for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create registers a new session for the given identity and returns its token.
func (s *Store) Create(userID int64, nome string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	s.sessions[token] = Session{
		UserID:    userID,
		Nome:      nome,
		ExpiresAt: s.now().Add(s.ttl),
	}
	return token
}

// Get returns the session for token, reporting whether a live session exists.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return sess, true
}

// Invalidate removes the session for token. Unknown tokens are a no-op.
func (s *Store) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Len returns the number of stored sessions, expired entries included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) purgeExpiredLocked() {
	now := s.now()
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
