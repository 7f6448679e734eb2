package httpx

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const (
	DefaultCSRFCookieName  = "csrf_token"
	DefaultCSRFHeaderName  = "X-Csrf-Token"
	DefaultCSRFTokenLength = 32

	csrfCookieMaxAge    = 12 * 3600
	csrfMultipartMemory = 1 << 20
)

// CSRFConfig configures CSRFProtection. Zero values fall back to the defaults above;
// the form field shares the cookie's name.
type CSRFConfig struct {
	CookieName    string
	HeaderName    string
	FormFieldName string
	CookieDomain  string
	TokenLength   int
	// Failed renders the rejection; nil writes a plain 403.
	Failed http.Handler
}

type csrfGuard struct {
	CSRFConfig
}

func newCSRFGuard(cfg CSRFConfig) csrfGuard {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCSRFCookieName
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultCSRFHeaderName
	}
	if cfg.FormFieldName == "" {
		cfg.FormFieldName = cfg.CookieName
	}
	if cfg.TokenLength <= 0 {
		cfg.TokenLength = DefaultCSRFTokenLength
	}
	return csrfGuard{cfg}
}

// CSRFProtection guards unsafe methods with a double-submit token. The token lives
// in a cookie app.js can read; htmx echoes it in X-Csrf-Token and plain forms
// carry it in a hidden csrf_token field.
func CSRFProtection(cfg CSRFConfig) func(http.Handler) http.Handler {
	g := newCSRFGuard(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := g.token(w, r)
			if err != nil {
				http.Error(w, "unable to issue CSRF token", http.StatusInternalServerError)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), csrfTokenKey{}, token))

			if isUnsafeMethod(r.Method) && !g.verify(r, token) {
				g.reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// token returns the browser's current token, issuing a fresh cookie when it has none.
func (g csrfGuard) token(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(g.CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	raw := make([]byte, g.TokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("csrf token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     g.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   g.CookieDomain,
		HttpOnly: false, // app.js copies it into the htmx header
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   csrfCookieMaxAge,
	})
	return token, nil
}

// verify compares the submitted token with the cookie in constant time.
// A freshly issued cookie never verifies: the browser had nothing to echo.
func (g csrfGuard) verify(r *http.Request, expected string) bool {
	if _, err := r.Cookie(g.CookieName); err != nil {
		return false
	}
	got := g.submitted(r)
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}

// submitted reads the token from the header, or from a url-encoded or multipart body.
func (g csrfGuard) submitted(r *http.Request) string {
	if v := r.Header.Get(g.HeaderName); v != "" {
		return v
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	switch mediaType {
	case "application/x-www-form-urlencoded":
		err = r.ParseForm()
	case "multipart/form-data":
		err = r.ParseMultipartForm(csrfMultipartMemory)
	default:
		return ""
	}
	if err != nil {
		return ""
	}
	return r.PostFormValue(g.FormFieldName)
}

func (g csrfGuard) reject(w http.ResponseWriter, r *http.Request) {
	if g.Failed != nil {
		g.Failed.ServeHTTP(w, r)
		return
	}
	http.Error(w, "CSRF token validation failed", http.StatusForbidden)
}

func isUnsafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	}
	return true
}

// isSecureRequest reports whether the request arrived over HTTPS, directly or via a proxy.
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

type csrfTokenKey struct{}

// GetCSRFToken returns the request's token for embedding in forms.
func GetCSRFToken(r *http.Request) string {
	token, _ := r.Context().Value(csrfTokenKey{}).(string)
	return token
}
