package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
	"github.com/target/salonbook-ui/internal/ports"
	"github.com/target/salonbook-ui/internal/service"
)

// WorkspaceStore hands out the per-session dashboard state.
type WorkspaceStore interface {
	Get(sessionID string) *service.Workspace
	Drop(sessionID string)
}

// MessagesService is the messaging panel simulation.
type MessagesService interface {
	View(sessionID string, role domainauth.Role) service.MessagesView
	Select(sessionID string, role domainauth.Role, contactID string) service.MessagesView
	Send(sessionID string, role domainauth.Role, text string) service.MessagesView
	Delete(sessionID string, role domainauth.Role, contactID, messageID string) service.MessagesView
	Keystroke(sessionID string, role domainauth.Role, input string) bool
	Typing(sessionID string, role domainauth.Role) bool
}

// SalonService manages the salon profile, addresses and social links.
type SalonService interface {
	Details(ctx context.Context, salonID string) (model.SalonDetails, error)
	Update(ctx context.Context, salonID string, req model.UpdateSalonRequest) error
	SaveAddress(ctx context.Context, salonID, addressID string, in model.AddressInput) error
	DeleteAddress(ctx context.Context, salonID, addressID string) error
	SaveSocialLink(ctx context.Context, salonID, linkID string, in model.SocialLinkInput) error
	DeleteSocialLink(ctx context.Context, salonID, linkID string) error
}

// PortfolioService manages albums and their images.
type PortfolioService interface {
	Albums(ctx context.Context, salonID string) ([]model.Album, error)
	SaveAlbum(ctx context.Context, salonID, albumID string, in model.AlbumInput) error
	DeleteAlbum(ctx context.Context, salonID, albumID string) error
	AddImage(ctx context.Context, salonID, albumID string, in model.ImageInput) error
	UpdateCaption(ctx context.Context, salonID, albumID, imageID, caption string) error
	DeleteImage(ctx context.Context, salonID, albumID, imageID string) error
}

// CatalogService manages the salon's bookable services.
type CatalogService interface {
	List(ctx context.Context, salonID string) ([]model.Service, error)
	Save(ctx context.Context, salonID, serviceID string, in model.ServiceInput) error
	Delete(ctx context.Context, salonID, serviceID string) error
}

// FAQService manages the salon FAQ.
type FAQService interface {
	List(ctx context.Context, salonID string) ([]model.FAQ, error)
	Save(ctx context.Context, salonID, faqID string, in model.FAQInput) error
	Delete(ctx context.Context, salonID, faqID string) error
}

// ReviewService reads salon reviews.
type ReviewService interface {
	List(ctx context.Context, salonID string, q model.ReviewQuery) (model.ReviewPage, model.ReviewQuery, error)
}

// AdminService drives the registration approval console.
type AdminService interface {
	List(ctx context.Context, status model.RegistrationStatus) ([]model.Registration, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, reason string) error
	Delete(ctx context.Context, id string) error
}

// UploadService proxies browser images to the backend.
type UploadService interface {
	Upload(ctx context.Context, img *model.ImageUpload) (string, error)
}

// RegistrationWizard validates and submits the sign-up wizard.
type RegistrationWizard interface {
	Steps(accountType domainauth.Role) []service.WizardStep
	Advance(step service.WizardStep, req *model.RegisterRequest) (service.WizardStep, error)
	Back(step service.WizardStep) service.WizardStep
	Submit(ctx context.Context, req model.RegisterRequest) error
	HoldPassword(draftID, password string) string
	RecallPassword(draftID string) (string, bool)
	Forget(draftID string)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ WorkspaceStore     = (*service.WorkspaceStore)(nil)
	_ MessagesService    = (*service.MessagesService)(nil)
	_ SalonService       = (*service.SalonService)(nil)
	_ PortfolioService   = (*service.PortfolioService)(nil)
	_ CatalogService     = (*service.CatalogService)(nil)
	_ FAQService         = (*service.FAQService)(nil)
	_ ReviewService      = (*service.ReviewService)(nil)
	_ AdminService       = (*service.AdminService)(nil)
	_ UploadService      = (*service.UploadService)(nil)
	_ RegistrationWizard = (*service.RegistrationService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T            *TemplateRenderer
	Auth         AuthServiceInterface
	Workspaces   WorkspaceStore
	Messages     MessagesService
	Salons       SalonService
	Portfolio    PortfolioService
	Catalog      CatalogService
	FAQs         FAQService
	Reviews      ReviewService
	Admin        AdminService
	Uploads      UploadService
	Stats        ports.StatsProvider
	Registration RegistrationWizard

	CookieName     string
	CookieDomain   string
	MaxUploadBytes int64
	IsDev          bool // Development mode flag for enhanced error reporting
	Logger         *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) cookieName() string {
	if h.CookieName == "" {
		return "session_id"
	}
	return h.CookieName
}

func (h *UIHandlers) cookie() cookieSpec {
	return cookieSpec{Name: h.cookieName(), Domain: h.CookieDomain}
}

func (h *UIHandlers) dropWorkspace(sessionID string) {
	if h.Workspaces != nil {
		h.Workspaces.Drop(sessionID)
	}
}

// currentSession returns the authenticated session or answers with a login redirect.
func (h *UIHandlers) currentSession(w http.ResponseWriter, r *http.Request) (*domainauth.Session, bool) {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		redirectToLogin(w, r)
		return nil, false
	}
	return sess, true
}

// sessionExpired handles a backend 401: the credential is gone, so the local
// session and workspace are discarded and the browser is sent to sign in.
// It reports whether err was handled.
func (h *UIHandlers) sessionExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	h.logger().InfoContext(r.Context(), "backend rejected credential, ending session", "path", r.URL.Path)
	endSession(r, endSessionParams{
		W:        w,
		Sessions: h.Auth,
		OnEnded:  h.dropWorkspace,
		Cookie:   h.cookie(),
		Logger:   h.logger(),
	})
	redirectToLogin(w, r)
	return true
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{
			Name:  session.Name,
			Email: session.Email,
			Role:  session.Role.String(),
		}
		layout.IsAuthenticated = true
		layout.IsAdmin = session.Role == domainauth.RoleAdmin
	}

	return layout
}

// basePageData constructs the common page data map with user context.
// Errors, Form and FormKey are always present so templates can index them.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdmin":         layout.IsAdmin,
		"Errors":          map[string]string{},
		"Form":            map[string]string{},
		"FormKey":         "",
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// renderPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.raiseToast(w, r, data)

	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

// renderFragment renders one named template for an htmx swap.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	h.raiseToast(w, r, data)
	if err := h.T.RenderFragment(w, name, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "fragment "+name)
	}
}

// raiseToast mirrors the page notice as a toast on htmx requests.
func (h *UIHandlers) raiseToast(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if !IsHTMX(r) {
		return
	}
	if n, ok := data["Notice"].(*viewmodel.Notice); ok && n != nil {
		triggerToast(w, n.Message, string(n.Severity))
	}
}

func extractLayoutInfo(data map[string]any) viewmodel.Layout {
	layout := viewmodel.Layout{}
	if v, ok := data["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger(EventShowToast, map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div class="template-error">
				<h2>Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre>` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// formValues collects the trimmed values of fields from the parsed form.
func formValues(r *http.Request, fields ...string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = strings.TrimSpace(r.FormValue(f))
	}
	return out
}
