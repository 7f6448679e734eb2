package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
	"github.com/target/salonbook-ui/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, creds domainauth.Credentials) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	EndSession(ctx context.Context, sessionID string) error
	Logout(ctx context.Context, sess *domainauth.Session) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

const defaultPostLoginPath = "/dashboard"

// LoginPage renders the sign-in form. Signed-in users go straight to their destination.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirect := postLoginRedirect(r.URL.Query().Get("redirect_uri"))
	if sessionFromCookie(r, h.Auth, h.cookieName()) != nil {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, loginView{RedirectURI: redirect})
}

// LoginSubmit exchanges the submitted credentials for a session.
// POST /auth/login.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	creds := domainauth.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	redirect := postLoginRedirect(r.PostFormValue("redirect_uri"))

	sess, err := h.Auth.Login(r.Context(), creds)
	if err != nil {
		h.logger().InfoContext(r.Context(), "login failed",
			"error", err, "code", apperrors.GetCode(err))
		h.renderLogin(w, r, loginView{
			RedirectURI: redirect,
			Email:       creds.Email,
			Err:         err,
		})
		return
	}

	setSessionCookie(w, r, h.cookie(), *sess)
	if IsHTMX(r) {
		HTMX(w).Redirect(redirect)
		return
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout ends the session and always lands on the home page, even when the
// backend call fails or the session is already gone.
// POST /auth/logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := sessionFromCookie(r, h.Auth, h.cookieName()); sess != nil {
		if err := h.Auth.Logout(r.Context(), sess); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
		h.dropWorkspace(sess.ID)
	}
	clearCookie(w, r, h.cookie())

	if IsHTMX(r) {
		HTMX(w).Redirect("/")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Index sends signed-in users to the dashboard and everyone else to the sign-in form.
// GET /.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if sessionFromCookie(r, h.Auth, h.cookieName()) != nil {
		http.Redirect(w, r, defaultPostLoginPath, http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, loginView{RedirectURI: defaultPostLoginPath})
}

type loginView struct {
	RedirectURI string
	Email       string
	Err         error
}

func (h *UIHandlers) renderLogin(w http.ResponseWriter, r *http.Request, v loginView) {
	b := NewTemplateData(r, PageMeta{Title: "Sign in - SalonBook", PageTitle: "Sign in", CurrentPage: PageLogin}).
		With("RedirectURI", v.RedirectURI).
		WithForm("login", map[string]string{"email": v.Email})

	status := http.StatusOK
	if v.Err != nil {
		status = apperrors.HTTPStatus(v.Err)
		if fe := apperrors.Fields(v.Err); len(fe) > 0 {
			b.WithFieldErrors(fe)
		} else if apperrors.IsUnauthorized(v.Err) {
			b.WithError("Invalid email or password.")
		} else {
			b.WithNotice(noticeFromError(v.Err))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK && !IsHTMX(r) {
		w.WriteHeader(status)
	}
	if err := h.T.RenderFull(w, r, b.Build()); err != nil {
		h.logAndRenderTemplateError(w, r, err, "login page render")
	}
}

// cookieSpec names a cookie and the domain it is scoped to.
type cookieSpec struct {
	Name   string
	Domain string
}

// endSessionParams groups the collaborators needed to tear down a session.
type endSessionParams struct {
	W        http.ResponseWriter
	Sessions SessionEnder
	OnEnded  func(sessionID string)
	Cookie   cookieSpec
	Logger   *slog.Logger
}

// endSession drops the current session locally, runs OnEnded (workspace cleanup)
// and clears the session cookie. The backend is not called.
func endSession(r *http.Request, p endSessionParams) {
	id := ""
	if sess := GetSessionFromContext(r.Context()); sess != nil {
		id = sess.ID
	} else if c, err := r.Cookie(p.Cookie.Name); err == nil {
		id = c.Value
	}

	if id != "" {
		if p.Sessions != nil {
			if err := p.Sessions.EndSession(r.Context(), id); err != nil && p.Logger != nil {
				p.Logger.WarnContext(r.Context(), "failed to end session", "error", err)
			}
		}
		if p.OnEnded != nil {
			p.OnEnded(id)
		}
	}
	clearCookie(p.W, r, p.Cookie)
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors the attributes used when setting it so every browser deletes it.
func clearCookie(w http.ResponseWriter, r *http.Request, spec cookieSpec) {
	http.SetCookie(w, &http.Cookie{
		Name:     spec.Name,
		Value:    "",
		Path:     "/",
		Domain:   spec.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func setSessionCookie(w http.ResponseWriter, r *http.Request, spec cookieSpec, s domainauth.Session) {
	maxAge := 0
	if !s.ExpiresAt.IsZero() {
		maxAge = max(int(time.Until(s.ExpiresAt).Seconds()), 1)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     spec.Name,
		Value:    s.ID,
		Path:     "/",
		Domain:   spec.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") ||
		strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return candidate
}

// postLoginRedirect is safeRedirectPath with the dashboard as the default
// landing page. Auth pages are never a destination.
func postLoginRedirect(candidate string) string {
	p := safeRedirectPath(candidate)
	if p == "/" || strings.HasPrefix(p, "/auth/") {
		return defaultPostLoginPath
	}
	return p
}

// noticeFromError maps an error onto the banner shown to the user.
// Validation problems are warnings; everything else is an error with a
// message safe to show in the browser.
func noticeFromError(err error) *viewmodel.Notice {
	if err == nil {
		return nil
	}
	var ae *apperrors.AppError
	msg := "Something went wrong. Please try again."
	switch {
	case apperrors.IsValidation(err):
		if len(apperrors.Fields(err)) > 0 {
			msg = "Please fix the highlighted fields."
		} else if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}
		return viewmodel.NewNotice(viewmodel.SeverityWarning, msg)
	case apperrors.IsTimeout(err):
		msg = "The salon service took too long to respond. Please try again."
	case apperrors.IsUpstream(err):
		msg = "The salon service is unavailable right now. Please try again shortly."
	case apperrors.IsForbidden(err):
		msg = "You don't have permission to do that."
	case apperrors.IsNotFound(err), apperrors.IsConflict(err):
		if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}
	}
	return viewmodel.NewNotice(viewmodel.SeverityError, msg)
}
