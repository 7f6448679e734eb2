package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/salonbook-ui/internal/clock"
	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	mockauth "github.com/target/salonbook-ui/internal/mocks/auth"
	"github.com/target/salonbook-ui/internal/ports"
)

var authNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newTestAuthService(backend ports.Authenticator, store ports.SessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Backend:    backend,
		Sessions:   store,
		SessionTTL: time.Hour,
		Clock:      clock.NewFixed(authNow),
	})
}

func TestAuthService_Login_UsesTokenExpiry(t *testing.T) {
	exp := authNow.Add(30 * time.Minute).Truncate(time.Second)
	backend := mockauth.NewFakeAuthenticator()
	backend.DefaultToken = signedToken(t, exp)
	backend.DefaultUser.SalonID = "42"
	store := mockauth.NewMemorySessionStore()

	svc := newTestAuthService(backend, store)
	sess, err := svc.Login(context.Background(), domainauth.Credentials{Email: " owner@example.com ", Password: "secret"})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, backend.DefaultToken, sess.Token)
	assert.True(t, exp.Equal(sess.ExpiresAt))
	assert.Equal(t, "42", sess.SalonID)
	assert.Equal(t, domainauth.RoleUnknown, sess.Role, "role is filled in later by the resolver")
	assert.False(t, sess.RoleResolved)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, *sess, stored)
}

func TestAuthService_Login_OpaqueTokenFallsBackToTTL(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	svc := newTestAuthService(backend, mockauth.NewMemorySessionStore())

	sess, err := svc.Login(context.Background(), domainauth.Credentials{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, authNow.Add(time.Hour), sess.ExpiresAt)
}

func TestAuthService_Login_ExpiredToken(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	backend.DefaultToken = signedToken(t, authNow.Add(-time.Minute))
	store := mockauth.NewMemorySessionStore()
	svc := newTestAuthService(backend, store)

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "a@example.com", Password: "pw"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Zero(t, store.Len())
}

func TestAuthService_Login_MissingFieldsSkipBackend(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	backend.LoginFunc = func(context.Context, domainauth.Credentials) (domainauth.LoginResult, error) {
		t.Fatal("backend must not be called")
		return domainauth.LoginResult{}, nil
	}
	svc := newTestAuthService(backend, mockauth.NewMemorySessionStore())

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "  "})
	require.Error(t, err)
	fields := apperrors.Fields(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthService_Login_BackendRejects(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	backend.LoginFunc = func(context.Context, domainauth.Credentials) (domainauth.LoginResult, error) {
		return domainauth.LoginResult{}, apperrors.Unauthorized("Invalid email or password")
	}
	store := mockauth.NewMemorySessionStore()
	svc := newTestAuthService(backend, store)

	_, err := svc.Login(context.Background(), domainauth.Credentials{Email: "a@example.com", Password: "bad"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Zero(t, store.Len())
}

func TestAuthService_GetSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid session", func(t *testing.T) {
		t.Parallel()
		store := mockauth.NewMemorySessionStore()
		require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1", Token: "t", ExpiresAt: authNow.Add(time.Minute)}))
		svc := newTestAuthService(mockauth.NewFakeAuthenticator(), store)

		sess, err := svc.GetSession(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", sess.ID)
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		t.Parallel()
		store := mockauth.NewMemorySessionStore()
		require.NoError(t, store.Save(ctx, domainauth.Session{ID: "s1", Token: "t", ExpiresAt: authNow.Add(-time.Minute)}))
		svc := newTestAuthService(mockauth.NewFakeAuthenticator(), store)

		_, err := svc.GetSession(ctx, "s1")
		require.ErrorIs(t, err, errSessionExpired)
		assert.Zero(t, store.Len())
	})

	t.Run("missing session", func(t *testing.T) {
		t.Parallel()
		svc := newTestAuthService(mockauth.NewFakeAuthenticator(), mockauth.NewMemorySessionStore())

		_, err := svc.GetSession(ctx, "nope")
		require.ErrorIs(t, err, ports.ErrSessionNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		svc := newTestAuthService(mockauth.NewFakeAuthenticator(), mockauth.NewMemorySessionStore())

		_, err := svc.GetSession(ctx, "")
		require.Error(t, err)
	})
}

func TestAuthService_Logout_AlwaysDeletesSession(t *testing.T) {
	ctx := context.Background()
	backend := mockauth.NewFakeAuthenticator()
	var gotBearer string
	backend.LogoutFunc = func(ctx context.Context) error {
		gotBearer, _ = ports.BearerFromContext(ctx)
		return errors.New("backend down")
	}
	store := mockauth.NewMemorySessionStore()
	sess := domainauth.Session{ID: "s1", Token: "tok-1", ExpiresAt: authNow.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	svc := newTestAuthService(backend, store)
	err := svc.Logout(ctx, &sess)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
	assert.Equal(t, "tok-1", gotBearer)
	assert.Equal(t, 1, backend.Logouts())
	assert.Zero(t, store.Len())
}

func TestAuthService_Logout_NilSession(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	svc := newTestAuthService(backend, mockauth.NewMemorySessionStore())

	require.NoError(t, svc.Logout(context.Background(), nil))
	assert.Zero(t, backend.Logouts())
}

func TestAuthService_Register(t *testing.T) {
	backend := mockauth.NewFakeAuthenticator()
	svc := newTestAuthService(backend, mockauth.NewMemorySessionStore())

	err := svc.Register(context.Background(), model.RegisterRequest{AccountType: domainauth.RoleClient, Name: "Ana"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, backend.Registered())

	req := model.RegisterRequest{
		AccountType: domainauth.RoleProfessional,
		Name:        "Ana",
		Email:       "ana@example.com",
		Password:    "longenough",
	}
	require.NoError(t, svc.Register(context.Background(), req))
	require.Len(t, backend.Registered(), 1)
	assert.Equal(t, "ana@example.com", backend.Registered()[0].Email)
}

func TestTokenExpiry(t *testing.T) {
	exp := authNow.Add(time.Hour).Truncate(time.Second)
	got, ok := tokenExpiry(signedToken(t, exp))
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = tokenExpiry("not-a-jwt")
	assert.False(t, ok)
}
