// Package memory provides an in-process session store for local development.
package memory

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/ports"
)

// SessionStore keeps sessions in a bounded, expiring LRU. Sessions do not
// survive a restart and are not shared between replicas.
type SessionStore struct {
	cache *expirable.LRU[string, domainauth.Session]
	now   func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a store holding at most size sessions, each evicted after ttl.
func NewSessionStore(size int, ttl time.Duration) *SessionStore {
	if size <= 0 {
		size = 1024
	}
	return &SessionStore{
		cache: expirable.NewLRU[string, domainauth.Session](size, nil, ttl),
		now:   time.Now,
	}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(s.now()) {
		return errors.New("session is expired")
	}
	s.cache.Add(sess.ID, sess)
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		s.cache.Remove(id)
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}
