package service

import (
	"context"
	"fmt"

	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

// FAQService manages a salon's FAQs.
type FAQService struct {
	repo ports.FAQRepository
}

// NewFAQService constructs a new FAQService.
func NewFAQService(repo ports.FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

// List returns the salon's FAQs.
func (s *FAQService) List(ctx context.Context, salonID string) ([]model.FAQ, error) {
	if err := requireSalon(salonID); err != nil {
		return nil, err
	}
	faqs, err := s.repo.ListFAQs(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}

// Save creates a FAQ, or replaces it when faqID is set.
func (s *FAQService) Save(ctx context.Context, salonID, faqID string, in model.FAQInput) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	if faqID == "" {
		return s.repo.CreateFAQ(ctx, salonID, in)
	}
	return s.repo.UpdateFAQ(ctx, salonID, faqID, in)
}

// Delete removes a FAQ.
func (s *FAQService) Delete(ctx context.Context, salonID, faqID string) error {
	if err := requireSalon(salonID); err != nil {
		return err
	}
	if err := requireID(faqID, "FAQ id"); err != nil {
		return err
	}
	return s.repo.DeleteFAQ(ctx, salonID, faqID)
}
