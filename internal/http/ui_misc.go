package httpx

import (
	"errors"
	"net/http"
)

// AccessDenied renders the 403 page for signed-in users lacking a role.
func (h *UIHandlers) AccessDenied(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		triggerToast(w, "You don't have access to that page.", "error")
		w.WriteHeader(http.StatusForbidden)
		return
	}
	data := NewTemplateData(r, PageMeta{
		Title:       "Access denied - SalonBook",
		PageTitle:   "Access denied",
		CurrentPage: PageAccessDenied,
	}).Build()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.logger().Error("failed to render access denied page", "error", err)
	}
}

// NotFound handles 404 errors with auth-aware behavior.
// For browser requests, it renders an HTML error page.
// For API requests, it returns a JSON error response.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if IsBrowserRequest(r) {
		h.renderBrowserNotFound(w, r)
	} else {
		h.renderAPINotFound(w, r)
	}
}

// renderBrowserNotFound renders an HTML 404 page with auth-aware content.
func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	isAuthenticated := sessionFromCookie(r, h.Auth, h.cookieName()) != nil

	data := map[string]any{
		"Title":           "Page Not Found - SalonBook",
		"Code":            "404",
		"Message":         "The page you're looking for doesn't exist.",
		"IsAuthenticated": isAuthenticated,
		"ShowLogin":       !isAuthenticated,
		"RedirectURI":     safeRedirectPath(r.URL.RequestURI()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if h.T == nil {
		_, _ = w.Write([]byte("Page not found\n"))
		return
	}
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("failed to render not found page", "error", err)
	}
}

// renderAPINotFound renders a JSON 404 response.
func (h *UIHandlers) renderAPINotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: "not_found",
		Err:     errors.New("not found"),
	})
}
