package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/target/salonbook-ui/internal/clock"
	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/mocks"
	fakes "github.com/target/salonbook-ui/internal/mocks/auth"
	"github.com/target/salonbook-ui/internal/service"
	"github.com/target/salonbook-ui/internal/testutil"
)

// testCSRFToken is echoed by test requests in both the cookie and the form.
const testCSRFToken = "test-csrf-token"

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Now:        testutil.TestTime,
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// testApp is the full router wired over in-memory fakes and gomock repositories.
type testApp struct {
	Handler    http.Handler
	Sessions   *fakes.MemorySessionStore
	Backend    *fakes.FakeAuthenticator
	Identity   *fakes.StubIdentityReader
	Workspaces *service.WorkspaceStore

	Salons        *mocks.MockSalonRepository
	Portfolio     *mocks.MockPortfolioRepository
	Catalog       *mocks.MockCatalogRepository
	FAQs          *mocks.MockFAQRepository
	Reviews       *mocks.MockReviewReader
	Registrations *mocks.MockRegistrationRepository
	Uploader      *mocks.MockImageUploader
}

// newTestApp builds the router with templates read from disk. Tests are
// skipped when the templates are not reachable from the package directory.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	if _, err := os.Stat(TemplatePathFromTest); os.IsNotExist(err) {
		t.Skip("Templates not available, skipping handler test")
	}

	ctrl := gomock.NewController(t)
	a := &testApp{
		Sessions:      fakes.NewMemorySessionStore(),
		Backend:       fakes.NewFakeAuthenticator(),
		Identity:      &fakes.StubIdentityReader{},
		Workspaces:    service.NewWorkspaceStore(service.WorkspaceStoreOptions{}),
		Salons:        mocks.NewMockSalonRepository(ctrl),
		Portfolio:     mocks.NewMockPortfolioRepository(ctrl),
		Catalog:       mocks.NewMockCatalogRepository(ctrl),
		FAQs:          mocks.NewMockFAQRepository(ctrl),
		Reviews:       mocks.NewMockReviewReader(ctrl),
		Registrations: mocks.NewMockRegistrationRepository(ctrl),
		Uploader:      mocks.NewMockImageUploader(ctrl),
	}

	auth := service.NewAuthService(service.AuthServiceOptions{Backend: a.Backend, Sessions: a.Sessions})
	a.Handler = newTestRouter(t, RouterServices{
		Auth:         auth,
		Roles:        service.NewRoleResolver(service.RoleResolverOptions{Identity: a.Identity, Sessions: a.Sessions}),
		Workspaces:   a.Workspaces,
		Messages:     service.NewMessagesService(a.Workspaces, clock.NewFixed(testutil.TestTime())),
		Salons:       service.NewSalonService(service.SalonServiceOptions{Repo: a.Salons}),
		Portfolio:    service.NewPortfolioService(a.Portfolio),
		Catalog:      service.NewCatalogService(a.Catalog),
		FAQs:         service.NewFAQService(a.FAQs),
		Reviews:      service.NewReviewService(a.Reviews),
		Admin:        service.NewAdminService(service.AdminServiceOptions{Repo: a.Registrations}),
		Uploads:      service.NewUploadService(a.Uploader, 0),
		Registration: service.NewRegistrationService(auth),
		Stats:        service.StaticStats{},
	})
	return a
}

// newTestRouter is NewRouter with the renderer pointed at the on-disk templates.
func newTestRouter(t *testing.T, services RouterServices) http.Handler {
	t.Helper()
	services.Templates = os.DirFS(TemplatePathFromTest)
	return NewRouter(services)
}

// login stores sess and returns the cookie that selects it.
func (a *testApp) login(t *testing.T, sess domainauth.Session) *http.Cookie {
	t.Helper()
	if err := a.Sessions.Save(t.Context(), sess); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return &http.Cookie{Name: "session_id", Value: sess.ID}
}

// serve runs req through the router.
func (a *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)
	return rec
}

// browserGet builds a top-level browser navigation.
func browserGet(target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// htmxGet builds an htmx GET.
func htmxGet(target string, cookies ...*http.Cookie) *http.Request {
	req := browserGet(target, cookies...)
	req.Header.Set("HX-Request", "true")
	return req
}

// formPost builds a CSRF-valid urlencoded form post.
func formPost(target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	if form == nil {
		form = url.Values{}
	}
	form.Set(DefaultCSRFCookieName, testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: testCSRFToken})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// htmxPost is formPost sent by htmx.
func htmxPost(target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := formPost(target, form, cookies...)
	req.Header.Set("HX-Request", "true")
	return req
}

// readBody reads the recorded response body.
func readBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}
