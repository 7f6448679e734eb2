package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

const maxRejectReasonLen = 500

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	Repo   ports.RegistrationRepository
	Logger *slog.Logger
}

// AdminService backs the registration approval console.
type AdminService struct {
	repo   ports.RegistrationRepository
	logger *slog.Logger
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{repo: opts.Repo, logger: logger.With("component", "admin_service")}
}

// List returns registrations in the given status.
func (s *AdminService) List(ctx context.Context, status model.RegistrationStatus) ([]model.Registration, error) {
	status = model.ParseRegistrationStatus(string(status))
	regs, err := s.repo.ListRegistrations(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// Approve accepts a pending registration.
func (s *AdminService) Approve(ctx context.Context, id string) error {
	if err := requireID(id, "Registration id"); err != nil {
		return err
	}
	if err := s.repo.ApproveRegistration(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "registration approved", "registration_id", id)
	return nil
}

// Reject declines a registration. The reason is optional and trimmed.
func (s *AdminService) Reject(ctx context.Context, id, reason string) error {
	if err := requireID(id, "Registration id"); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if r := []rune(reason); len(r) > maxRejectReasonLen {
		reason = string(r[:maxRejectReasonLen])
	}
	if err := s.repo.RejectRegistration(ctx, id, reason); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "registration rejected", "registration_id", id, "has_reason", reason != "")
	return nil
}

// Delete removes a registration record.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := requireID(id, "Registration id"); err != nil {
		return err
	}
	return s.repo.DeleteRegistration(ctx, id)
}
