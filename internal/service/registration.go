package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/model"
)

// WizardStep is a page of the registration wizard.
type WizardStep int

// Wizard steps in order. StepDone means the payload is ready to submit.
const (
	StepAccountType WizardStep = iota + 1
	StepAccount
	StepSalon
	StepDone
)

// Registrar submits a completed registration.
type Registrar interface {
	Register(ctx context.Context, req model.RegisterRequest) error
}

const (
	maxPasswordDrafts = 1024
	passwordDraftTTL  = 30 * time.Minute
)

// RegistrationService drives the multi-step registration wizard. Steps carry
// earlier fields as hidden inputs and are re-validated on every post, except
// the password: it is held here under a draft id so it never goes back into
// the page.
type RegistrationService struct {
	registrar Registrar
	drafts    *expirable.LRU[string, string]
}

// NewRegistrationService constructs a new RegistrationService.
func NewRegistrationService(registrar Registrar) *RegistrationService {
	return &RegistrationService{
		registrar: registrar,
		drafts:    expirable.NewLRU[string, string](maxPasswordDrafts, nil, passwordDraftTTL),
	}
}

// HoldPassword stores password for later steps and returns the draft id to
// carry in the form. A blank password leaves the draft as it is.
func (s *RegistrationService) HoldPassword(draftID, password string) string {
	if password == "" {
		return draftID
	}
	if draftID == "" {
		draftID = uuid.NewString()
	}
	s.drafts.Add(draftID, password)
	return draftID
}

// RecallPassword returns the password held under draftID. Expired or unknown
// drafts report false and the wizard asks for the password again.
func (s *RegistrationService) RecallPassword(draftID string) (string, bool) {
	if draftID == "" {
		return "", false
	}
	return s.drafts.Get(draftID)
}

// Forget drops a draft once the registration is submitted.
func (s *RegistrationService) Forget(draftID string) {
	if draftID != "" {
		s.drafts.Remove(draftID)
	}
}

// Steps lists the steps shown for an account type. Owners get the salon step.
func (s *RegistrationService) Steps(accountType auth.Role) []WizardStep {
	if accountType == auth.RoleOwner {
		return []WizardStep{StepAccountType, StepAccount, StepSalon}
	}
	return []WizardStep{StepAccountType, StepAccount}
}

// Advance validates the data for step and returns the step to show next.
// On a validation error the same step is returned with the error.
func (s *RegistrationService) Advance(step WizardStep, req *model.RegisterRequest) (WizardStep, error) {
	switch step {
	case StepAccountType:
		if err := req.ValidateAccountType(); err != nil {
			return StepAccountType, err
		}
		return StepAccount, nil
	case StepAccount:
		if err := req.ValidateAccountType(); err != nil {
			return StepAccountType, err
		}
		if err := req.ValidateAccount(); err != nil {
			return StepAccount, err
		}
		if req.AccountType == auth.RoleOwner {
			return StepSalon, nil
		}
		req.Salon = nil
		return StepDone, nil
	case StepSalon:
		if err := req.ValidateAccountType(); err != nil {
			return StepAccountType, err
		}
		if err := req.ValidateAccount(); err != nil {
			return StepAccount, err
		}
		if err := req.ValidateSalon(); err != nil {
			return StepSalon, err
		}
		return StepDone, nil
	default:
		return StepAccountType, nil
	}
}

// Back returns the step before step.
func (s *RegistrationService) Back(step WizardStep) WizardStep {
	if step <= StepAccountType {
		return StepAccountType
	}
	return step - 1
}

// Submit sends the completed payload.
func (s *RegistrationService) Submit(ctx context.Context, req model.RegisterRequest) error {
	return s.registrar.Register(ctx, req)
}
