package httpx

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfHandler(cfg CSRFConfig) http.Handler {
	return CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetCSRFToken(r)))
	}))
}

func withCSRFCookie(r *http.Request, token string) *http.Request {
	r.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	return r
}

func TestCSRFProtection_GetIssuesToken(t *testing.T) {
	rec := httptest.NewRecorder()
	csrfHandler(CSRFConfig{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, DefaultCSRFCookieName, cookies[0].Name)
	assert.False(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.Equal(t, cookies[0].Value, rec.Body.String(), "token exposed to templates")
}

func TestCSRFProtection_ExistingCookieIsReused(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withCSRFCookie(httptest.NewRequest(http.MethodGet, "/", nil), "tok")
	csrfHandler(CSRFConfig{}).ServeHTTP(rec, req)

	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, "tok", rec.Body.String())
}

func TestCSRFProtection_Validation(t *testing.T) {
	form := url.Values{"csrf_token": {"tok"}}.Encode()

	tests := []struct {
		name   string
		build  func() *http.Request
		status int
	}{
		{
			name: "header matches",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/dashboard/tab", nil)
				r.Header.Set(DefaultCSRFHeaderName, "tok")
				return withCSRFCookie(r, "tok")
			},
			status: http.StatusOK,
		},
		{
			name: "header mismatch",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/dashboard/tab", nil)
				r.Header.Set(DefaultCSRFHeaderName, "other")
				return withCSRFCookie(r, "tok")
			},
			status: http.StatusForbidden,
		},
		{
			name: "form field matches",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return withCSRFCookie(r, "tok")
			},
			status: http.StatusOK,
		},
		{
			name: "multipart field matches",
			build: func() *http.Request {
				var buf bytes.Buffer
				mw := multipart.NewWriter(&buf)
				_ = mw.WriteField("csrf_token", "tok")
				_ = mw.Close()
				r := httptest.NewRequest(http.MethodPost, "/dashboard/salon/services", &buf)
				r.Header.Set("Content-Type", mw.FormDataContentType())
				return withCSRFCookie(r, "tok")
			},
			status: http.StatusOK,
		},
		{
			name: "json body without header",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader(`{}`))
				r.Header.Set("Content-Type", "application/json")
				return withCSRFCookie(r, "tok")
			},
			status: http.StatusForbidden,
		},
		{
			name: "no cookie",
			build: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
				r.Header.Set(DefaultCSRFHeaderName, "tok")
				return r
			},
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			csrfHandler(CSRFConfig{}).ServeHTTP(rec, tt.build())
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCSRFProtection_FailedHandler(t *testing.T) {
	failed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	req := withCSRFCookie(httptest.NewRequest(http.MethodPost, "/x", nil), "tok")
	csrfHandler(CSRFConfig{Failed: failed}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
