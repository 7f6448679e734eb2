package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	salonbook "github.com/target/salonbook-ui"
	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/observability/metrics"
	"github.com/target/salonbook-ui/internal/ports"
	"github.com/target/salonbook-ui/internal/service"
)

// formOverheadBytes is allowed on top of the image limit for the other multipart fields.
const formOverheadBytes = 1 << 20

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Roles        *service.RoleResolver
	Workspaces   *service.WorkspaceStore
	Messages     *service.MessagesService
	Salons       *service.SalonService
	Portfolio    *service.PortfolioService
	Catalog      *service.CatalogService
	FAQs         *service.FAQService
	Reviews      *service.ReviewService
	Admin        *service.AdminService
	Uploads      *service.UploadService
	Registration *service.RegistrationService
	Stats        ports.StatsProvider

	Metrics      *metrics.Metrics
	HealthChecks map[string]HealthCheck

	CookieName       string
	CookieDomain     string
	MaxUploadBytes   int64
	CompressionLevel int
	IsDev            bool         // Development mode flag: templates and static files are read from disk
	Templates        fs.FS        // Overrides the template source (tests)
	Logger           *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", healthHandler(services.HealthChecks))
	mux.Handle("HEAD /healthz", healthHandler(services.HealthChecks))
	if services.Metrics != nil {
		mux.Handle("GET /metrics", services.Metrics.Handler())
	}

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		registerUIRoutes(mux, uiHandlers, newUIRouteConfig(services, uiHandlers))
	}

	// Wrap with NotFound handler so unmatched browser paths get the HTML 404 page
	var handler http.Handler = &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	maxBody := services.MaxUploadBytes
	if maxBody <= 0 {
		maxBody = service.DefaultMaxUploadBytes
	}
	handler = Logging(services.Logger, services.Metrics)(handler)
	handler = limitBody(maxBody + formOverheadBytes)(handler)
	handler = Compression(CompressionConfig{Level: services.CompressionLevel, MinSize: 1024, Logger: services.Logger})(handler)
	handler = BrowserDetection()(handler)
	return Recover(services.Logger)(handler)
}

// limitBody caps request bodies so oversized uploads fail before they are buffered.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// templateFS chooses the template filesystem: disk in dev mode, embedded otherwise.
func templateFS(isDev bool) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}
	sub, err := fs.Sub(salonbook.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// setupUIHandlers creates UI handlers with the template renderer.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	fsys := services.Templates
	if fsys == nil {
		fsys = templateFS(services.IsDev)
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fsys,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	h := &UIHandlers{
		T:              tr,
		CookieName:     services.CookieName,
		CookieDomain:   services.CookieDomain,
		MaxUploadBytes: services.MaxUploadBytes,
		IsDev:          services.IsDev,
		Logger:         services.Logger,
		Stats:          services.Stats,
	}
	// Typed nil pointers must not leak into the interfaces.
	if services.Auth != nil {
		h.Auth = services.Auth
	}
	if services.Workspaces != nil {
		h.Workspaces = services.Workspaces
	}
	if services.Messages != nil {
		h.Messages = services.Messages
	}
	if services.Salons != nil {
		h.Salons = services.Salons
	}
	if services.Portfolio != nil {
		h.Portfolio = services.Portfolio
	}
	if services.Catalog != nil {
		h.Catalog = services.Catalog
	}
	if services.FAQs != nil {
		h.FAQs = services.FAQs
	}
	if services.Reviews != nil {
		h.Reviews = services.Reviews
	}
	if services.Admin != nil {
		h.Admin = services.Admin
	}
	if services.Uploads != nil {
		h.Uploads = services.Uploads
	}
	if services.Registration != nil {
		h.Registration = services.Registration
	}
	return h
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(true, http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(salonbook.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(false, http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(false, http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders adds cache headers: nothing is cached in dev mode,
// embedded assets are cached briefly since their names carry no content hash.
func staticWithCacheHeaders(isDev bool, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isDev {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=300")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern != "" {
		h.mux.ServeHTTP(w, r)
		return
	}

	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// The mux answered 404 (or 405 for a known path): use our page for browsers
	if cw.status == http.StatusNotFound && h.uiHandlers != nil {
		h.uiHandlers.NotFound(w, r)
		return
	}
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth           AuthServiceInterface
	Resolver       RoleResolver
	CookieName     string
	CookieDomain   string
	OnSessionEnded func(sessionID string)
	Denied         http.Handler
	Logger         *slog.Logger
}

func newUIRouteConfig(services RouterServices, h *UIHandlers) uiRouteConfig {
	cfg := uiRouteConfig{
		Auth:           h.Auth,
		CookieName:     h.cookieName(),
		CookieDomain:   services.CookieDomain,
		OnSessionEnded: h.dropWorkspace,
		Denied:         http.HandlerFunc(h.AccessDenied),
		Logger:         services.Logger,
	}
	if services.Roles != nil {
		cfg.Resolver = services.Roles
	}
	return cfg
}

func (cfg uiRouteConfig) csrf() func(http.Handler) http.Handler {
	return CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
}

// publicWrap protects anonymous forms (login, register) with CSRF only.
func (cfg uiRouteConfig) publicWrap() func(http.Handler) http.Handler {
	return cfg.csrf()
}

// authWrap requires a session, resolves its role once, then applies CSRF protection.
// It is a CSRF-only wrapper when auth is nil.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	return cfg.sessionChain(nil)
}

// adminWrap is authWrap plus the admin role requirement.
func (cfg uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	return cfg.sessionChain(RequireRoleBrowser(domainauth.RoleAdmin, cfg.Denied))
}

// sessionChain builds RequireAuthBrowser -> ResolveRole -> [extra] -> CSRF.
func (cfg uiRouteConfig) sessionChain(extra func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	csrf := cfg.csrf()
	if cfg.Auth == nil {
		return csrf
	}
	requireAuth := RequireAuthBrowser(cfg.Auth, cfg.CookieName)
	resolve := ResolveRole(ResolveRoleConfig{
		Resolver:       cfg.Resolver,
		Sessions:       cfg.Auth,
		OnSessionEnded: cfg.OnSessionEnded,
		CookieName:     cfg.CookieName,
		CookieDomain:   cfg.CookieDomain,
		Logger:         cfg.Logger,
	})
	return func(h http.Handler) http.Handler {
		inner := csrf(h)
		if extra != nil {
			inner = extra(inner)
		}
		return requireAuth(resolve(inner))
	}
}

// registerUIRoutes delegates to per-area UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIAuthRoutes(mux, h, cfg)
	registerUIDashboardRoutes(mux, h, cfg)
	registerUISalonRoutes(mux, h, cfg)
	registerUIMessageRoutes(mux, h, cfg)
	registerUIAdminRoutes(mux, h, cfg)
}

// registerUIAuthRoutes wires sign-in, sign-out and the registration wizard.
func registerUIAuthRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.publicWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Index)))
	mux.Handle("GET /auth/login", wrap(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /auth/login", wrap(http.HandlerFunc(h.LoginSubmit)))
	mux.Handle("POST /auth/logout", wrap(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /register", wrap(http.HandlerFunc(h.RegisterPage)))
	mux.Handle("POST /register", wrap(http.HandlerFunc(h.RegisterSubmit)))
}

// registerUIDashboardRoutes wires the dashboard shell, tab switching and uploads.
func registerUIDashboardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /dashboard", wrap(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /dashboard/content", wrap(http.HandlerFunc(h.DashboardContent)))
	mux.Handle("POST /dashboard/tab", wrap(http.HandlerFunc(h.SelectTab)))
	mux.Handle("GET /dashboard/reviews", wrap(http.HandlerFunc(h.SalonReviews)))
	mux.Handle("POST /uploads", wrap(http.HandlerFunc(h.UploadImage)))
}

// registerUISalonRoutes wires the salon details sub-tabs and their forms.
func registerUISalonRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /dashboard/salon/{subtab}", wrap(http.HandlerFunc(h.SalonSubTab)))
	mux.Handle("POST /dashboard/salon/details", wrap(http.HandlerFunc(h.SaveSalon)))

	mux.Handle("POST /dashboard/salon/addresses", wrap(http.HandlerFunc(h.SaveAddress)))
	mux.Handle("POST /dashboard/salon/addresses/{id}", wrap(http.HandlerFunc(h.SaveAddress)))
	mux.Handle("POST /dashboard/salon/addresses/{id}/delete", wrap(http.HandlerFunc(h.DeleteAddress)))

	mux.Handle("POST /dashboard/salon/social-links", wrap(http.HandlerFunc(h.SaveSocialLink)))
	mux.Handle("POST /dashboard/salon/social-links/{id}", wrap(http.HandlerFunc(h.SaveSocialLink)))
	mux.Handle("POST /dashboard/salon/social-links/{id}/delete", wrap(http.HandlerFunc(h.DeleteSocialLink)))

	mux.Handle("POST /dashboard/salon/albums", wrap(http.HandlerFunc(h.SaveAlbum)))
	mux.Handle("POST /dashboard/salon/albums/{albumID}", wrap(http.HandlerFunc(h.SaveAlbum)))
	mux.Handle("POST /dashboard/salon/albums/{albumID}/delete", wrap(http.HandlerFunc(h.DeleteAlbum)))
	mux.Handle("POST /dashboard/salon/albums/{albumID}/images", wrap(http.HandlerFunc(h.AddImage)))
	mux.Handle("POST /dashboard/salon/albums/{albumID}/images/{imageID}", wrap(http.HandlerFunc(h.UpdateImageCaption)))
	mux.Handle("POST /dashboard/salon/albums/{albumID}/images/{imageID}/delete", wrap(http.HandlerFunc(h.DeleteImage)))

	mux.Handle("POST /dashboard/salon/services", wrap(http.HandlerFunc(h.SaveService)))
	mux.Handle("POST /dashboard/salon/services/{id}", wrap(http.HandlerFunc(h.SaveService)))
	mux.Handle("POST /dashboard/salon/services/{id}/delete", wrap(http.HandlerFunc(h.DeleteService)))

	mux.Handle("POST /dashboard/salon/faqs", wrap(http.HandlerFunc(h.SaveFAQ)))
	mux.Handle("POST /dashboard/salon/faqs/{id}", wrap(http.HandlerFunc(h.SaveFAQ)))
	mux.Handle("POST /dashboard/salon/faqs/{id}/delete", wrap(http.HandlerFunc(h.DeleteFAQ)))
}

// registerUIMessageRoutes wires the messaging panel.
func registerUIMessageRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /dashboard/messages/typing", wrap(http.HandlerFunc(h.TypingStatus)))
	mux.Handle("POST /dashboard/messages/typing", wrap(http.HandlerFunc(h.Typing)))
	mux.Handle("GET /dashboard/messages/{contactID}", wrap(http.HandlerFunc(h.SelectConversation)))
	mux.Handle("POST /dashboard/messages", wrap(http.HandlerFunc(h.SendMessage)))
	mux.Handle("POST /dashboard/messages/{contactID}/{messageID}/delete", wrap(http.HandlerFunc(h.DeleteMessage)))
}

// registerUIAdminRoutes wires the registration approval console (admin-only).
func registerUIAdminRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /admin/registrations", wrapAdmin(http.HandlerFunc(h.AdminRegistrations)))
	mux.Handle("POST /admin/registrations/{id}/approve", wrapAdmin(http.HandlerFunc(h.ApproveRegistration)))
	mux.Handle("POST /admin/registrations/{id}/reject", wrapAdmin(http.HandlerFunc(h.RejectRegistration)))
	mux.Handle("POST /admin/registrations/{id}/delete", wrapAdmin(http.HandlerFunc(h.DeleteRegistration)))
}
