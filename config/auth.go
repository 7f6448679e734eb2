package config

import (
	"strings"
	"time"
)

// SessionStoreKind selects the backing store for server-side sessions.
type SessionStoreKind string

const (
	// SessionStoreRedis persists sessions in Redis (production).
	SessionStoreRedis SessionStoreKind = "redis"
	// SessionStoreMemory keeps sessions in process memory (development only).
	SessionStoreMemory SessionStoreKind = "memory"
)

// AuthConfig groups session-related configuration.
type AuthConfig struct {
	// SessionStore determines where sessions are kept.
	SessionStore SessionStoreKind `env:"SESSION_STORE" envDefault:"redis"`

	// SessionTTL is used when the backend credential carries no readable expiry.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// SessionCookieName is the cookie carrying the opaque session identifier.
	SessionCookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// SessionKeyPrefix namespaces session keys in Redis.
	SessionKeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"salonbook:session:"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	switch SessionStoreKind(strings.ToLower(string(a.SessionStore))) {
	case SessionStoreMemory:
		a.SessionStore = SessionStoreMemory
	default:
		a.SessionStore = SessionStoreRedis
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	if strings.TrimSpace(a.SessionCookieName) == "" {
		a.SessionCookieName = "session_id"
	}
}
