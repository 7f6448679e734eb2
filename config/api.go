package config

import (
	"strings"
	"time"
)

// SalonAPIConfig describes how to reach the salon marketplace REST API.
type SalonAPIConfig struct {
	// BaseURL is the root of the backend API (e.g., "https://api.salons.example.com/api").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000/api"`

	// Timeout bounds every upstream call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// RolePath is a JMESPath expression selecting the role from the identity payload.
	RolePath string `env:"ROLE_PATH" envDefault:"role || user.role"`

	// SalonPath is a JMESPath expression selecting the managed salon id from the identity payload.
	SalonPath string `env:"SALON_PATH" envDefault:"salonId || salon_id || user.salonId || salon._id"`
}

// Sanitize applies guardrails to backend API configuration values.
func (c *SalonAPIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if strings.TrimSpace(c.RolePath) == "" {
		c.RolePath = "role"
	}
	if strings.TrimSpace(c.SalonPath) == "" {
		c.SalonPath = "salonId"
	}
}

// WorkspaceConfig bounds the per-session in-memory state (active tab, message threads).
type WorkspaceConfig struct {
	MaxSessions int           `env:"WORKSPACE_MAX_SESSIONS" envDefault:"10000"`
	TTL         time.Duration `env:"WORKSPACE_TTL"          envDefault:"8h"`
}

// Sanitize applies guardrails to workspace configuration values.
func (c *WorkspaceConfig) Sanitize() {
	if c.MaxSessions <= 0 {
		c.MaxSessions = 10000
	}
	if c.TTL <= 0 {
		c.TTL = 8 * time.Hour
	}
}
