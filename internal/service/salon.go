package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/target/salonbook-ui/internal/domain/model"
	apperrors "github.com/target/salonbook-ui/internal/errors"
	"github.com/target/salonbook-ui/internal/ports"
)

// errNoSalon is returned when a salon-scoped operation runs without a salon id.
var errNoSalon = apperrors.Forbidden("No salon is associated with this account.")

func requireSalon(salonID string) error {
	if strings.TrimSpace(salonID) == "" {
		return errNoSalon
	}
	return nil
}

func requireID(id, label string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation(label + " is required")
	}
	return nil
}

// SalonServiceOptions groups dependencies for SalonService.
type SalonServiceOptions struct {
	Repo   ports.SalonRepository
	Logger *slog.Logger
}

// SalonService manages the salon profile together with its addresses and social links.
type SalonService struct {
	repo   ports.SalonRepository
	logger *slog.Logger
}

// NewSalonService constructs a new SalonService.
func NewSalonService(opts SalonServiceOptions) *SalonService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SalonService{repo: opts.Repo, logger: logger.With("component", "salon_service")}
}

// Details loads the salon, its addresses and its social links concurrently.
func (s *SalonService) Details(ctx context.Context, salonID string) (model.SalonDetails, error) {
	if err := requireSalon(salonID); err != nil {
		return model.SalonDetails{}, err
	}

	var out model.SalonDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		salon, err := s.repo.GetSalon(gctx, salonID)
		if err != nil {
			return fmt.Errorf("get salon: %w", err)
		}
		out.Salon = salon
		return nil
	})
	g.Go(func() error {
		addrs, err := s.repo.ListAddresses(gctx, salonID)
		if err != nil {
			return fmt.Errorf("list addresses: %w", err)
		}
		out.Addresses = addrs
		return nil
	})
	g.Go(func() error {
		links, err := s.repo.ListSocialLinks(gctx, salonID)
		if err != nil {
			return fmt.Errorf("list social links: %w", err)
		}
		out.SocialLinks = links
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.SalonDetails{}, err
	}
	return out, nil
}

// Update saves the editable salon fields.
func (s *SalonService) Update(ctx context.Context, salonID string, req model.UpdateSalonRequest) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateSalon(ctx, salonID, req)
}

// SaveAddress creates an address, or replaces it when addressID is set.
func (s *SalonService) SaveAddress(ctx context.Context, salonID, addressID string, in model.AddressInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if addressID == "" {
		return s.repo.CreateAddress(ctx, salonID, in)
	}
	return s.repo.UpdateAddress(ctx, salonID, addressID, in)
}

// DeleteAddress removes an address.
func (s *SalonService) DeleteAddress(ctx context.Context, salonID, addressID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(addressID, "Address id"); err != nil {
		return err
	}
	return s.repo.DeleteAddress(ctx, salonID, addressID)
}

// SaveSocialLink creates a social link, or replaces it when linkID is set.
func (s *SalonService) SaveSocialLink(ctx context.Context, salonID, linkID string, in model.SocialLinkInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if linkID == "" {
		return s.repo.CreateSocialLink(ctx, salonID, in)
	}
	return s.repo.UpdateSocialLink(ctx, salonID, linkID, in)
}

// DeleteSocialLink removes a social link.
func (s *SalonService) DeleteSocialLink(ctx context.Context, salonID, linkID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(linkID, "Social link id"); err != nil {
		return err
	}
	return s.repo.DeleteSocialLink(ctx, salonID, linkID)
}
