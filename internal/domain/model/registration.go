//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/target/salonbook-ui/internal/domain/auth"
	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 8

// RegistrationStatus is the approval state of a pending account.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// RegistrationStatuses lists statuses in console tab order.
var RegistrationStatuses = []RegistrationStatus{RegistrationPending, RegistrationApproved, RegistrationRejected}

// ParseRegistrationStatus normalizes s, falling back to pending.
func ParseRegistrationStatus(s string) RegistrationStatus {
	switch RegistrationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RegistrationApproved:
		return RegistrationApproved
	case RegistrationRejected:
		return RegistrationRejected
	default:
		return RegistrationPending
	}
}

// Registration is an account awaiting (or past) admin review.
type Registration struct {
	ID              string             `json:"_id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Role            auth.Role          `json:"role"`
	SalonName       string             `json:"salonName"`
	Status          RegistrationStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// RegisterRequest is the final payload of the registration wizard.
type RegisterRequest struct {
	AccountType auth.Role    `json:"role"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	Phone       string       `json:"phone,omitempty"`
	Salon       *SalonBasics `json:"salon,omitempty"`
}

// SalonBasics is collected from owners in the last wizard step.
type SalonBasics struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Phone string `json:"phone,omitempty"`
}

// SalonTypes lists the salon types offered in the wizard.
var SalonTypes = []string{"Hair Salon", "Barbershop", "Nail Salon", "Spa", "Beauty Salon"}

// RegistrationAccountTypes are the roles a visitor may sign up as.
var RegistrationAccountTypes = []auth.Role{auth.RoleClient, auth.RoleProfessional, auth.RoleOwner}

// ValidateAccountType checks the step-one selection.
func (r *RegisterRequest) ValidateAccountType() error {
	switch r.AccountType {
	case auth.RoleClient, auth.RoleProfessional, auth.RoleOwner:
		return nil
	}
	return apperrors.ValidationField("accountType", "Choose an account type")
}

// ValidateAccount checks the step-two fields.
func (r *RegisterRequest) ValidateAccount() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	fe := apperrors.FieldErrors{}
	fe.Required("name", r.Name, "Name")
	fe.Required("email", r.Email, "Email")
	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			fe.Add("email", "Enter a valid email address")
		}
	}
	fe.Required("password", r.Password, "Password")
	if r.Password != "" && utf8.RuneCountInString(r.Password) < MinPasswordLen {
		fe.Add("password", "Password must be at least 8 characters")
	}
	return fe.Err()
}

// ValidateSalon checks the owner-only step-three fields.
func (r *RegisterRequest) ValidateSalon() error {
	if r.AccountType != auth.RoleOwner {
		r.Salon = nil
		return nil
	}
	if r.Salon == nil {
		r.Salon = &SalonBasics{}
	}
	r.Salon.Name = strings.TrimSpace(r.Salon.Name)
	r.Salon.Type = strings.TrimSpace(r.Salon.Type)
	r.Salon.Phone = strings.TrimSpace(r.Salon.Phone)

	fe := apperrors.FieldErrors{}
	fe.Required("salonName", r.Salon.Name, "Salon name")
	fe.Required("salonType", r.Salon.Type, "Salon type")
	return fe.Err()
}

// Validate runs every step's checks in order.
func (r *RegisterRequest) Validate() error {
	if err := r.ValidateAccountType(); err != nil {
		return err
	}
	if err := r.ValidateAccount(); err != nil {
		return err
	}
	return r.ValidateSalon()
}

// NeedsApproval reports whether the account lands in the admin queue.
func (r *RegisterRequest) NeedsApproval() bool {
	return r.AccountType == auth.RoleProfessional || r.AccountType == auth.RoleOwner
}
