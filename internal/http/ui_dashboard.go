package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/dashboard"
	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
	"github.com/target/salonbook-ui/internal/service"
)

// dashboardView is the state one dashboard render is computed from.
type dashboardView struct {
	Session   *domainauth.Session
	Workspace *service.Workspace
	Decision  dashboard.Decision
}

func (h *UIHandlers) dashboardViewFor(sess *domainauth.Session, tab dashboard.Tab) dashboardView {
	ws := h.Workspaces.Get(sess.ID)
	return dashboardView{
		Session:   sess,
		Workspace: ws,
		Decision:  dashboard.Route(sess.Role, tab, sess.SalonID),
	}
}

// dashboardData builds the shell data: the sidebar for the session role and
// the section chosen by the content router.
func (h *UIHandlers) dashboardData(r *http.Request, v dashboardView) *TemplateDataBuilder {
	nav := dashboard.NavigationFor(v.Session.Role, v.Session.SalonID)
	title := "Dashboard"
	for _, it := range nav.Items {
		if it.Tab == v.Decision.Tab {
			title = it.Label
		}
	}
	return NewTemplateData(r, PageMeta{
		Title:       title + " - SalonBook",
		PageTitle:   title,
		CurrentPage: PageDashboard,
	}).
		With("Sidebar", viewmodel.NewSidebar(nav, v.Decision.Tab)).
		With("Decision", v.Decision).
		With("Placeholder", v.Decision.Placeholder()).
		With("Section", sectionFor(v.Decision)).
		With("RoleResolved", v.Session.RoleResolved)
}

// loadSection fetches whatever the chosen section renders.
func (h *UIHandlers) loadSection(r *http.Request, v dashboardView, b *TemplateDataBuilder) error {
	ctx := r.Context()
	switch v.Decision.Kind {
	case dashboard.ContentOverview:
		return h.loadOverview(ctx, v.Session, b)
	case dashboard.ContentMessages:
		b.With("Messages", h.Messages.View(v.Session.ID, v.Session.Role))
	case dashboard.ContentSalonDetails:
		return h.loadSalonSubTab(ctx, v.Session.SalonID, v.Workspace.SubTab(), b)
	case dashboard.ContentSalonReviews:
		return h.loadReviews(ctx, v.Session.SalonID, reviewQueryFrom(r), b)
	}
	return nil
}

func (h *UIHandlers) loadOverview(ctx context.Context, sess *domainauth.Session, b *TemplateDataBuilder) error {
	if h.Stats == nil {
		b.With("Overview", model.Overview{})
		return nil
	}
	ov, err := h.Stats.Overview(ctx, sess.SalonID)
	b.With("Overview", ov)
	return err
}

// respondSection answers a section request: htmx gets the section fragment,
// plain browsers get the full dashboard page around it.
func (h *UIHandlers) respondSection(w http.ResponseWriter, r *http.Request, v dashboardView, b *TemplateDataBuilder, loadErr error) {
	if h.sessionExpired(w, r, loadErr) {
		return
	}
	if loadErr != nil {
		h.logger().WarnContext(r.Context(), "dashboard section load failed",
			"section", v.Decision.Kind, "error", loadErr)
		b.WithNotice(noticeFromError(loadErr))
	}
	data := b.Build()
	if WantsPartial(r) {
		h.renderFragment(w, r, ContentTemplateFor(sectionFor(v.Decision)), data)
		return
	}
	h.renderPage(w, r, data)
}

// Dashboard renders the dashboard shell with the workspace's active section.
// GET /dashboard.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	v := h.dashboardViewFor(sess, h.Workspaces.Get(sess.ID).Tab())
	b := h.dashboardData(r, v)
	err := h.loadSection(r, v, b)
	if h.sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		h.logger().WarnContext(r.Context(), "dashboard section load failed",
			"section", v.Decision.Kind, "error", err)
		b.WithNotice(noticeFromError(err))
	}
	h.renderPage(w, r, b.Build())
}

// DashboardContent re-renders the content region and the sidebar out of band.
// htmx requests it after a tabChanged event.
// GET /dashboard/content.
func (h *UIHandlers) DashboardContent(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	if !IsHTMX(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	v := h.dashboardViewFor(sess, h.Workspaces.Get(sess.ID).Tab())
	b := h.dashboardData(r, v)
	err := h.loadSection(r, v, b)
	if h.sessionExpired(w, r, err) {
		return
	}
	if err != nil {
		b.WithNotice(noticeFromError(err))
	}
	h.renderFragment(w, r, "dashboard-region", b.Build())
}

// SelectTab stores the chosen section in the workspace.
// htmx gets a tabChanged event (the content region reloads itself);
// plain form posts are redirected back to the dashboard.
// POST /dashboard/tab.
func (h *UIHandlers) SelectTab(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	tab := dashboard.ParseTab(r.FormValue("tab"))
	h.Workspaces.Get(sess.ID).SetTab(tab)

	if IsHTMX(r) {
		HTMX(w).Trigger(EventTabChanged, map[string]string{"tab": string(tab)}).NoContent()
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// guardSection routes tab for the session and, when the router picks a
// placeholder (client on a salon tab, no salon yet), answers with it.
// It reports whether the caller may render the section itself.
func (h *UIHandlers) guardSection(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, tab dashboard.Tab) (dashboardView, bool) {
	v := h.dashboardViewFor(sess, tab)
	v.Workspace.SetTab(tab)
	if v.Decision.IsPlaceholder() {
		h.respondSection(w, r, v, h.dashboardData(r, v), nil)
		return v, false
	}
	return v, true
}
