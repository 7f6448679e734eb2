package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator  = (*FakeAuthenticator)(nil)
	_ ports.IdentityReader = (*StubIdentityReader)(nil)
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
)

// FakeAuthenticator simulates the backend auth endpoints with deterministic defaults.
type FakeAuthenticator struct {
	LoginFunc    func(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error)
	LogoutFunc   func(ctx context.Context) error
	RegisterFunc func(ctx context.Context, req model.RegisterRequest) error

	// DefaultToken and DefaultUser are returned by Login when LoginFunc is nil.
	DefaultToken string
	DefaultUser  domainauth.Identity

	mu         sync.Mutex
	logouts    int
	registered []model.RegisterRequest
}

// NewFakeAuthenticator creates a FakeAuthenticator with sensible defaults.
func NewFakeAuthenticator() *FakeAuthenticator {
	return &FakeAuthenticator{
		DefaultToken: "mock-token",
		DefaultUser: domainauth.Identity{
			UserID: "mock-user-1",
			Name:   "Mock User",
			Email:  "mock.user@example.com",
		},
	}
}

func (f *FakeAuthenticator) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, creds)
	}
	user := f.DefaultUser
	if user.Email == "" {
		user.Email = creds.Email
	}
	return domainauth.LoginResult{Token: f.DefaultToken, Identity: user}, nil
}

func (f *FakeAuthenticator) Logout(ctx context.Context) error {
	f.mu.Lock()
	f.logouts++
	f.mu.Unlock()
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx)
	}
	return nil
}

func (f *FakeAuthenticator) Register(ctx context.Context, req model.RegisterRequest) error {
	f.mu.Lock()
	f.registered = append(f.registered, req)
	f.mu.Unlock()
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return nil
}

// Logouts reports how many times Logout was called.
func (f *FakeAuthenticator) Logouts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logouts
}

// Registered returns the registration payloads received so far.
func (f *FakeAuthenticator) Registered() []model.RegisterRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.RegisterRequest(nil), f.registered...)
}

// StubIdentityReader returns a fixed identity and counts calls.
type StubIdentityReader struct {
	Identity domainauth.Identity
	Err      error
	// Block, when set, is received from before answering so tests can hold calls in flight.
	Block chan struct{}

	calls atomic.Int32
}

func (s *StubIdentityReader) Me(ctx context.Context) (domainauth.Identity, error) {
	s.calls.Add(1)
	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return domainauth.Identity{}, ctx.Err()
		}
	}
	return s.Identity, s.Err
}

// Calls reports how many times Me was called.
func (s *StubIdentityReader) Calls() int { return int(s.calls.Load()) }

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if id == "" || !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
