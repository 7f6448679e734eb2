package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/target/salonbook-ui/internal/clock"
	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/ports"
)

const defaultSessionTTL = 8 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend  ports.Authenticator
	Sessions ports.SessionStore
	// SessionTTL applies when the backend token carries no readable expiry.
	SessionTTL time.Duration
	Clock      clock.Clock
	Logger     *slog.Logger
}

// AuthService orchestrates login, logout, and registration against the backend and persists sessions.
type AuthService struct {
	backend  ports.Authenticator
	sessions ports.SessionStore
	ttl      time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		backend:  opts.Backend,
		sessions: opts.Sessions,
		ttl:      ttl,
		clock:    clk,
		logger:   logger.With("component", "auth_service"),
	}
}

// Login exchanges credentials with the backend and persists a new session.
// The session role stays unknown until the role resolver fills it in.
func (s *AuthService) Login(ctx context.Context, creds domainauth.Credentials) (*domainauth.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	fe := apperrors.FieldErrors{}
	fe.Required("email", creds.Email, "Email")
	fe.Required("password", creds.Password, "Password")
	if err := fe.Err(); err != nil {
		return nil, err
	}

	res, err := s.backend.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("backend login: %w", err)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	if exp, ok := tokenExpiry(res.Token); ok {
		if !exp.After(now) {
			return nil, apperrors.Unauthorized("The sign-in token has already expired.")
		}
		expiresAt = exp
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		Token:     res.Token,
		UserID:    res.Identity.UserID,
		Name:      res.Identity.Name,
		Email:     res.Identity.Email,
		SalonID:   res.Identity.SalonID,
		ExpiresAt: expiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.clock.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// EndSession removes a session locally without calling the backend.
func (s *AuthService) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Logout invalidates the credential on the backend and always removes the local session.
// A backend failure is returned after the session is gone.
func (s *AuthService) Logout(ctx context.Context, sess *domainauth.Session) error {
	if sess == nil {
		return nil
	}

	var remoteErr error
	if sess.Token != "" {
		if err := s.backend.Logout(ports.WithBearer(ctx, sess.Token)); err != nil {
			remoteErr = fmt.Errorf("backend logout: %w", err)
		}
	}

	return errors.Join(remoteErr, s.EndSession(ctx, sess.ID))
}

// Register validates the wizard payload and submits it to the backend.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.backend.Register(ctx, req); err != nil {
		return fmt.Errorf("backend register: %w", err)
	}
	s.logger.InfoContext(ctx, "registration submitted",
		"role", req.AccountType, "needs_approval", req.NeedsApproval())
	return nil
}

// tokenExpiry reads the exp claim of a JWT without verifying its signature.
// The backend verifies the token on every call; the claim only bounds the local session.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
