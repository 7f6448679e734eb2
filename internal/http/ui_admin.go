package httpx

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
)

// statusTab is one entry of the registration status filter.
type statusTab struct {
	Status string
	Label  string
	URL    string
	Active bool
}

func statusTabs(active model.RegistrationStatus) []statusTab {
	out := make([]statusTab, 0, len(model.RegistrationStatuses))
	for _, s := range model.RegistrationStatuses {
		out = append(out, statusTab{
			Status: string(s),
			Label:  titleWord(string(s)),
			URL:    "/admin/registrations?status=" + url.QueryEscape(string(s)),
			Active: s == active,
		})
	}
	return out
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// adminPage lists registrations with status, optionally after an action.
func (h *UIHandlers) adminPage(w http.ResponseWriter, r *http.Request, status model.RegistrationStatus, notice *viewmodel.Notice) {
	regs, err := h.Admin.List(r.Context(), status)
	if h.sessionExpired(w, r, err) {
		return
	}
	b := NewTemplateData(r, PageMeta{
		Title:       "Registrations - SalonBook",
		PageTitle:   "Registrations",
		CurrentPage: PageAdminRegistrations,
	}).
		With("Status", string(status)).
		With("StatusTabs", statusTabs(status)).
		With("Registrations", regs).
		WithNotice(notice)
	if err != nil {
		h.logger().WarnContext(r.Context(), "listing registrations failed", "status", status, "error", err)
		b.WithNotice(noticeFromError(err))
	}
	h.renderPage(w, r, b.Build())
}

// AdminRegistrations renders the approval console.
// GET /admin/registrations?status=pending|approved|rejected.
func (h *UIHandlers) AdminRegistrations(w http.ResponseWriter, r *http.Request) {
	h.adminPage(w, r, model.ParseRegistrationStatus(r.URL.Query().Get("status")), nil)
}

// adminAction runs one console action and re-lists the status tab it came from.
func (h *UIHandlers) adminAction(w http.ResponseWriter, r *http.Request, success string, run func(ctx context.Context, id string) error) {
	status := model.ParseRegistrationStatus(r.FormValue("status"))
	err := run(r.Context(), r.PathValue("id"))
	if h.sessionExpired(w, r, err) {
		return
	}
	notice := viewmodel.NewNotice(viewmodel.SeveritySuccess, success)
	if err != nil {
		h.logger().WarnContext(r.Context(), "registration action failed",
			"id", r.PathValue("id"), "error", err, "code", apperrors.GetCode(err))
		notice = noticeFromError(err)
	}
	h.adminPage(w, r, status, notice)
}

// ApproveRegistration approves a pending account.
// POST /admin/registrations/{id}/approve.
func (h *UIHandlers) ApproveRegistration(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "Registration approved.", h.Admin.Approve)
}

// RejectRegistration rejects an account with the reason typed in the confirm dialog.
// POST /admin/registrations/{id}/reject.
func (h *UIHandlers) RejectRegistration(w http.ResponseWriter, r *http.Request) {
	reason := r.FormValue("reason")
	h.adminAction(w, r, "Registration rejected.", func(ctx context.Context, id string) error {
		return h.Admin.Reject(ctx, id, reason)
	})
}

// DeleteRegistration removes a registration record.
// POST /admin/registrations/{id}/delete.
func (h *UIHandlers) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	h.adminAction(w, r, "Registration deleted.", h.Admin.Delete)
}
