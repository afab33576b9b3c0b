// Package session keeps each shopper's criteria and cart in memory for as
// long as the session stays active.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dripvault/storefront/internal/cart"
	"github.com/dripvault/storefront/internal/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("session not found")

// Session is the state owned by one shopper.
type Session struct {
	ID        string
	Criteria  query.Criteria
	Cart      *cart.Cart
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store holds sessions in memory. Sessions idle for longer than the TTL
// are dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewStore creates an empty store.
func NewStore(ttl time.Duration, log zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create starts a session with default criteria and an empty cart.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Criteria:  query.Default(),
		Cart:      cart.New(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess.ID
}

// Exists reports whether id names a live session.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.live(id)
	return ok
}

// Update runs fn with exclusive access to the session. Every read or
// mutation of session state goes through here, so each one is atomic and
// visible to the next caller.
func (s *Store) Update(id string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return ErrNotFound
	}
	sess.LastSeen = s.now()
	return fn(sess)
}

// Delete ends a session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len is the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug().Int("removed", n).Int("remaining", s.Len()).Msg("expired sessions swept")
			}
		}
	}
}

// live must be called with mu held.
func (s *Store) live(id string) (*Session, bool) {
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		return nil, false
	}
	return sess, true
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.LastSeen) > s.ttl
}
