package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents the acting user's marketplace role.
// Keep string form for easy persistence and cookies.
// The zero value means the role has not been resolved yet.
type Role string

const (
	RoleUnknown      Role = ""
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
	RoleOwner        Role = "owner"
	RoleAdmin        Role = "admin"
)

// ParseRole normalizes a raw role string from the backend.
// Unrecognized values map to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleClient:
		return RoleClient
	case RoleProfessional:
		return RoleProfessional
	case RoleOwner:
		return RoleOwner
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// IsKnown reports whether r is one of the marketplace roles.
func (r Role) IsKnown() bool { return r != RoleUnknown }

func (r Role) String() string {
	if r == RoleUnknown {
		return "unknown"
	}
	return string(r)
}

// Credentials are the email/password pair submitted on the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity represents the authenticated principal as reported by the backend.
// Adapters map the backend user payload into this shape.
type Identity struct {
	UserID  string
	Name    string
	Email   string
	Role    Role
	SalonID string
}

// LoginResult is what a successful backend login hands back.
type LoginResult struct {
	Token    string
	Identity Identity
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier carried in the session cookie.
// Token is the backend bearer credential and never leaves the server.
type Session struct {
	ID           string    `json:"id"`
	Token        string    `json:"token"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	RoleResolved bool      `json:"role_resolved"`
	SalonID      string    `json:"salon_id,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// HasSalon reports whether the session carries a managed salon identifier.
func (s Session) HasSalon() bool { return strings.TrimSpace(s.SalonID) != "" }

// Expired reports whether the session has passed its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
