package service

import (
	"context"
	"fmt"

	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

// CatalogService manages the services a salon offers.
type CatalogService struct {
	repo ports.CatalogRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(repo ports.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns the salon's services.
func (s *CatalogService) List(ctx context.Context, salonID string) ([]model.Service, error) {
	if err := requireSalon(salonID); err != nil {
		return nil, err
	}
	services, err := s.repo.ListServices(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// Save creates a service, or replaces it when serviceID is set.
func (s *CatalogService) Save(ctx context.Context, salonID, serviceID string, in model.ServiceInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := validateImage(in.Image, DefaultMaxUploadBytes); err != nil {
		return err
	}
	if serviceID == "" {
		return s.repo.CreateService(ctx, salonID, in)
	}
	return s.repo.UpdateService(ctx, salonID, serviceID, in)
}

// Delete removes a service.
func (s *CatalogService) Delete(ctx context.Context, salonID, serviceID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(serviceID, "Service id"); err != nil {
		return err
	}
	return s.repo.DeleteService(ctx, salonID, serviceID)
}
