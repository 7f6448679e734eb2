package httpx

import (
	"net/http"
	"strconv"

	domainauth "github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/service"
)

// registerView is what the wizard template renders.
type registerView struct {
	Step     service.WizardStep
	Steps    []service.WizardStep
	Req      model.RegisterRequest
	Done     bool
	Approval bool
	// Draft names the password held server-side between steps.
	Draft string
}

// StepNumber is the 1-based position of the step in the wizard.
func (v registerView) StepNumber() int { return int(v.Step) }

// IsStep reports whether n is the current step.
func (v registerView) IsStep(n int) bool { return int(v.Step) == n }

func (h *UIHandlers) renderRegister(w http.ResponseWriter, r *http.Request, v registerView, err error) {
	v.Req.Password = ""
	if v.Req.Salon == nil {
		v.Req.Salon = &model.SalonBasics{}
	}
	b := NewTemplateData(r, PageMeta{
		Title:       "Create an account - SalonBook",
		PageTitle:   "Create an account",
		CurrentPage: PageRegister,
	}).
		With("Wizard", v).
		With("AccountTypes", model.RegistrationAccountTypes).
		With("SalonTypes", model.SalonTypes)
	if err != nil {
		if fe := apperrors.Fields(err); len(fe) > 0 {
			b.WithFieldErrors(fe)
		}
		b.WithNotice(noticeFromError(err))
	}
	h.renderPage(w, r, b.Build())
}

// RegisterPage renders the first wizard step. ?type= preselects the account type.
// GET /register.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	req := model.RegisterRequest{AccountType: domainauth.ParseRole(r.URL.Query().Get("type"))}
	h.renderRegister(w, r, registerView{
		Step:  service.StepAccountType,
		Steps: h.Registration.Steps(req.AccountType),
		Req:   req,
	}, nil)
}

// RegisterSubmit moves the wizard forward or back. Every step posts the fields
// of all earlier steps as hidden inputs, apart from the password, which stays
// on the server under a draft id. The last step submits the payload.
// POST /register.
func (h *UIHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	req := registerRequestFrom(r)
	step := service.WizardStep(atoiDefault(r.PostFormValue("step"), int(service.StepAccountType)))

	draft := r.PostFormValue("draft")
	if req.Password == "" {
		req.Password, _ = h.Registration.RecallPassword(draft)
	}
	draft = h.Registration.HoldPassword(draft, req.Password)

	if r.PostFormValue("action") == "back" {
		prev := h.Registration.Back(step)
		h.renderRegister(w, r, registerView{Step: prev, Steps: h.Registration.Steps(req.AccountType), Req: req, Draft: draft}, nil)
		return
	}

	next, err := h.Registration.Advance(step, &req)
	view := registerView{Step: next, Steps: h.Registration.Steps(req.AccountType), Req: req, Draft: draft}
	if err != nil || next != service.StepDone {
		h.renderRegister(w, r, view, err)
		return
	}

	if err := h.Registration.Submit(r.Context(), req); err != nil {
		h.logger().InfoContext(r.Context(), "registration rejected", "error", err)
		view.Step = step
		h.renderRegister(w, r, view, err)
		return
	}
	h.Registration.Forget(draft)
	view.Done = true
	view.Approval = req.NeedsApproval()
	view.Draft = ""
	h.renderRegister(w, r, view, nil)
}

func registerRequestFrom(r *http.Request) model.RegisterRequest {
	req := model.RegisterRequest{
		AccountType: domainauth.ParseRole(r.PostFormValue("accountType")),
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		Phone:       r.PostFormValue("phone"),
	}
	if req.AccountType == domainauth.RoleOwner {
		req.Salon = &model.SalonBasics{
			Name:  r.PostFormValue("salonName"),
			Type:  r.PostFormValue("salonType"),
			Phone: r.PostFormValue("salonPhone"),
		}
	}
	return req
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
