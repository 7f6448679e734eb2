package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/munnerz/goautoneg"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/observability/metrics"
	"github.com/target/salonbook-ui/internal/ports"
)

// Logging returns a middleware that logs HTTP requests and records request metrics.
// It must wrap the mux directly so the matched pattern is visible after dispatch.
func Logging(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, ww.status, elapsed)
			logger.InfoContext(r.Context(), "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", route),
				slog.Int("status", ww.status),
				slog.Bool("htmx", IsHTMX(r)),
				slog.Duration("duration", elapsed),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *respWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler { //nolint:errorlint // sentinel re-panic per net/http contract
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionReader loads the session referenced by the session cookie.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

// sessionFromCookie loads the session named by the cookie; nil when absent, expired or unreadable.
func sessionFromCookie(r *http.Request, sessions SessionReader, cookieName string) *domainauth.Session {
	c, err := r.Cookie(cookieName)
	if sessions == nil || err != nil || c.Value == "" {
		return nil
	}
	if session, err := sessions.GetSession(r.Context(), c.Value); err == nil {
		return session
	}
	return nil
}

// withSession attaches the session and its bearer credential to the request.
func withSession(r *http.Request, session *domainauth.Session) *http.Request {
	ctx := SetSessionInContext(r.Context(), session)
	ctx = ports.WithBearer(ctx, session.Token)
	return r.WithContext(ctx)
}

// RequireAuthBrowser requires a valid session.
// Browser requests are redirected to the login page; others get a JSON 401.
func RequireAuthBrowser(sessions SessionReader, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromCookie(r, sessions, cookieName)
			if session == nil {
				unauthenticated(w, r)
				return
			}
			next.ServeHTTP(w, withSession(r, session))
		})
	}
}

// RoleResolver fills in the session role from the backend identity endpoint.
type RoleResolver interface {
	Resolve(ctx context.Context, sess domainauth.Session) (domainauth.Session, error)
}

// SessionEnder drops a server-side session without calling the backend.
type SessionEnder interface {
	EndSession(ctx context.Context, sessionID string) error
}

// ResolveRoleConfig wires the role resolution middleware.
type ResolveRoleConfig struct {
	Resolver RoleResolver
	Sessions SessionEnder
	// OnSessionEnded runs after a rejected credential ended the session (e.g. to drop workspace state).
	OnSessionEnded func(sessionID string)
	CookieName     string
	CookieDomain   string
	Logger         *slog.Logger
}

// ResolveRole resolves the acting user's role once per session before the handler runs.
// A lookup failure leaves the role unknown; a rejected credential ends the session
// and sends the browser back to the login page.
func ResolveRole(cfg ResolveRoleConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil || cfg.Resolver == nil {
				next.ServeHTTP(w, r)
				return
			}

			resolved, err := cfg.Resolver.Resolve(r.Context(), *session)
			if err != nil {
				if apperrors.IsUnauthorized(err) {
					endSession(r, endSessionParams{
						W: w, Sessions: cfg.Sessions, OnEnded: cfg.OnSessionEnded,
						Cookie: cookieSpec{Name: cfg.CookieName, Domain: cfg.CookieDomain},
						Logger: logger,
					})
					redirectToLogin(w, r)
					return
				}
				logger.DebugContext(r.Context(), "continuing with unknown role", "error", err)
			}
			next.ServeHTTP(w, withSession(r, &resolved))
		})
	}
}

// RequireRoleBrowser requires the session role to be required (admins pass every check).
// It must run after RequireAuthBrowser and ResolveRole. denied renders the browser
// response for authenticated users lacking the role; nil falls back to a plain 403.
func RequireRoleBrowser(required domainauth.Role, denied http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil {
				unauthenticated(w, r)
				return
			}

			if !hasRequiredRole(session.Role, required) {
				forbidden(w, r, denied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasRequiredRole(userRole, required domainauth.Role) bool {
	if userRole == domainauth.RoleAdmin {
		return true
	}
	return userRole.IsKnown() && userRole == required
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs API requests.
// Downstream handlers use it to choose between HTML and JSON responses.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if isBrowser, ok := r.Context().Value(browserRequestKey{}).(bool); ok {
		return isBrowser
	}
	return isBrowserRequest(r)
}

// isBrowserRequest treats htmx requests and requests preferring HTML as browser traffic.
// JSON-only endpoints (/uploads, /metrics, /healthz) and static assets are not.
func isBrowserRequest(r *http.Request) bool {
	switch {
	case strings.HasPrefix(r.URL.Path, "/static/"),
		r.URL.Path == "/uploads",
		r.URL.Path == "/metrics",
		r.URL.Path == "/healthz":
		return false
	case IsHTMX(r):
		return true
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return goautoneg.Negotiate(accept, []string{"text/html", "application/json"}) == "text/html"
}

// redirectToLogin sends the browser to the login page, remembering where it was headed.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectParam := url.QueryEscape(redirectPathForRequest(r))
	loginURL := "/auth/login?redirect_uri=" + redirectParam

	if IsHTMX(r) {
		// A swap would inject the login form into the dashboard; navigate instead.
		w.Header().Set(hxRedirect, loginURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

func redirectPathForRequest(r *http.Request) string {
	if IsHTMX(r) {
		if current := safeRedirectFromURL(r.Header.Get("Hx-Current-Url")); current != "" {
			return current
		}
		if referer := safeRedirectFromURL(r.Header.Get("Referer")); referer != "" {
			return referer
		}
	}
	if r.Method != http.MethodGet {
		return "/dashboard"
	}
	return safeRedirectPath(r.URL.RequestURI())
}

func safeRedirectFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	// Reject scheme-relative or host-only references.
	if u.Host != "" && !u.IsAbs() {
		return ""
	}
	if u.IsAbs() {
		return safeRedirectPath(u.RequestURI())
	}
	return safeRedirectPath(raw)
}

var (
	errAuthRequired = errors.New("authentication required")
	errNotPermitted = errors.New("insufficient permissions")
)

// unauthenticated sends browsers to the login page and API callers a JSON 401.
func unauthenticated(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		redirectToLogin(w, r)
		return
	}
	WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errAuthRequired})
}

// forbidden renders denied for browsers (plain 403 when nil) and a JSON 403 otherwise.
func forbidden(w http.ResponseWriter, r *http.Request, denied http.Handler) {
	switch {
	case !IsBrowserRequest(r):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: errNotPermitted})
	case denied != nil:
		denied.ServeHTTP(w, r)
	default:
		http.Error(w, "Access denied", http.StatusForbidden)
	}
}
