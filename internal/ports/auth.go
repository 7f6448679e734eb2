package ports

// Package ports defines interfaces (hexagonal ports) for the backend API and session storage.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
)

// Authenticator talks to the backend's auth endpoints.
type Authenticator interface {
	// Login exchanges credentials for a bearer token and the user's identity.
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error)

	// Logout invalidates the bearer credential carried by ctx on the backend.
	Logout(ctx context.Context) error

	// Register submits a new account from the registration wizard.
	Register(ctx context.Context, req model.RegisterRequest) error
}

// IdentityReader reads the acting user's identity using the bearer credential carried by ctx.
type IdentityReader interface {
	Me(ctx context.Context) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// ErrSessionNotFound is returned by SessionStore.Get for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")
