package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/ports"
)

type sessionMap map[string]*domainauth.Session

func (m sessionMap) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	if s, ok := m[id]; ok {
		return s, nil
	}
	return nil, errors.New("no session")
}

func echoSession(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	token, _ := ports.BearerFromContext(r.Context())
	_, _ = w.Write([]byte(string(sess.Role) + "|" + token))
}

func TestRequireAuthBrowser(t *testing.T) {
	sessions := sessionMap{"s1": {ID: "s1", Token: "bearer-1", Role: domainauth.RoleOwner}}
	h := BrowserDetection()(RequireAuthBrowser(sessions, "session_id")(http.HandlerFunc(echoSession)))

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "owner|bearer-1", rec.Body.String())
	})

	t.Run("browser without session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard?tab=messages", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login?redirect_uri=%2Fdashboard%3Ftab%3Dmessages", rec.Header().Get("Location"))
	})

	t.Run("htmx without session navigates to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/dashboard/tab", nil)
		req.Header.Set("Hx-Request", "true")
		req.Header.Set("Hx-Current-Url", "https://salons.example.com/dashboard")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/auth/login?redirect_uri=%2Fdashboard", rec.Header().Get("Hx-Redirect"))
	})

	t.Run("api caller gets json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication_required")
	})
}

func TestRequireRoleBrowser(t *testing.T) {
	denied := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("denied page"))
	})
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	h := BrowserDetection()(RequireRoleBrowser(domainauth.RoleOwner, denied)(ok))

	tests := []struct {
		name   string
		role   domainauth.Role
		status int
		body   string
	}{
		{"owner", domainauth.RoleOwner, http.StatusOK, "ok"},
		{"admin passes every check", domainauth.RoleAdmin, http.StatusOK, "ok"},
		{"client", domainauth.RoleClient, http.StatusForbidden, "denied page"},
		{"unknown role", domainauth.RoleUnknown, http.StatusForbidden, "denied page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/dashboard/salon", nil)
			req = req.WithContext(SetSessionInContext(req.Context(), &domainauth.Session{ID: "s", Role: tt.role}))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

type stubResolver struct {
	role domainauth.Role
	err  error
}

func (s stubResolver) Resolve(_ context.Context, sess domainauth.Session) (domainauth.Session, error) {
	if s.err != nil {
		return sess, s.err
	}
	sess.Role = s.role
	sess.RoleResolved = true
	return sess, nil
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		accept string
		htmx   bool
		want   bool
	}{
		{"no accept header", "/dashboard", "", false, true},
		{"html preferred", "/dashboard", "text/html,application/xhtml+xml;q=0.9", false, true},
		{"json preferred", "/dashboard", "application/json", false, false},
		{"htmx", "/dashboard/content", "*/*", true, true},
		{"static asset", "/static/app.js", "text/html", false, false},
		{"uploads endpoint", "/uploads", "text/html", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				r.Header.Set("Hx-Request", "true")
			}
			assert.Equal(t, tt.want, IsBrowserRequest(r))
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingRecordsStatus(t *testing.T) {
	h := Logging(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

type endedSessions []string

func (e *endedSessions) EndSession(_ context.Context, id string) error {
	*e = append(*e, id)
	return nil
}

func TestResolveRole(t *testing.T) {
	run := func(resolver RoleResolver, ended *endedSessions, dropped *[]string) *httptest.ResponseRecorder {
		h := BrowserDetection()(ResolveRole(ResolveRoleConfig{
			Resolver:       resolver,
			Sessions:       ended,
			OnSessionEnded: func(id string) { *dropped = append(*dropped, id) },
			CookieName:     "session_id",
		})(http.HandlerFunc(echoSession)))
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req = req.WithContext(SetSessionInContext(req.Context(), &domainauth.Session{ID: "s1", Token: "tok"}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("resolved role reaches the handler", func(t *testing.T) {
		var ended endedSessions
		var dropped []string
		rec := run(stubResolver{role: domainauth.RoleProfessional}, &ended, &dropped)
		assert.Equal(t, "professional|tok", rec.Body.String())
		assert.Empty(t, ended)
	})

	t.Run("upstream failure keeps the session with an unknown role", func(t *testing.T) {
		var ended endedSessions
		var dropped []string
		rec := run(stubResolver{err: errors.New("backend down")}, &ended, &dropped)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "|tok", rec.Body.String())
		assert.Empty(t, ended)
	})

	t.Run("rejected credential ends the session", func(t *testing.T) {
		var ended endedSessions
		var dropped []string
		rec := run(stubResolver{err: apperrors.Unauthorized("token expired")}, &ended, &dropped)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, endedSessions{"s1"}, ended)
		assert.Equal(t, []string{"s1"}, dropped)
	})
}
