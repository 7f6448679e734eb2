package testutil

import (
	"time"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
)

// SessionBuilder provides a fluent interface for building sessions in tests.
type SessionBuilder struct {
	sess domainauth.Session
}

// NewSession creates a SessionBuilder for a resolved owner session with sensible defaults.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		sess: domainauth.Session{
			ID:           "sess-1",
			Token:        "token-1",
			UserID:       "user-1",
			Name:         "Olivia Owner",
			Email:        "owner@example.com",
			Role:         domainauth.RoleOwner,
			RoleResolved: true,
			SalonID:      "42",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	}
}

// WithID sets the session id.
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.sess.ID = id
	return b
}

// WithRole sets a resolved role.
func (b *SessionBuilder) WithRole(role domainauth.Role) *SessionBuilder {
	b.sess.Role = role
	b.sess.RoleResolved = true
	return b
}

// Unresolved clears the role so the resolver has to look it up.
func (b *SessionBuilder) Unresolved() *SessionBuilder {
	b.sess.Role = domainauth.RoleUnknown
	b.sess.RoleResolved = false
	return b
}

// WithSalon sets the managed salon id; pass "" for none.
func (b *SessionBuilder) WithSalon(id string) *SessionBuilder {
	b.sess.SalonID = id
	return b
}

// WithExpiry sets the expiry.
func (b *SessionBuilder) WithExpiry(t time.Time) *SessionBuilder {
	b.sess.ExpiresAt = t
	return b
}

// Build returns the session.
func (b *SessionBuilder) Build() domainauth.Session {
	return b.sess
}
