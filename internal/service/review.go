package service

import (
	"context"
	"fmt"

	"github.com/target/salonbook-ui/internal/domain/model"
	"github.com/target/salonbook-ui/internal/ports"
)

// ReviewService pages through salon reviews.
type ReviewService struct {
	reader ports.ReviewReader
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(reader ports.ReviewReader) *ReviewService {
	return &ReviewService{reader: reader}
}

// List normalizes q and fetches the matching page.
func (s *ReviewService) List(ctx context.Context, salonID string, q model.ReviewQuery) (model.ReviewPage, model.ReviewQuery, error) {
	q.Normalize()
	if err := requireSalon(salonID); err != nil {
		return model.ReviewPage{}, q, err
	}
	page, err := s.reader.ListReviews(ctx, salonID, q)
	if err != nil {
		return model.ReviewPage{}, q, fmt.Errorf("list reviews: %w", err)
	}
	if page.Page == 0 {
		page.Page = q.Page
	}
	return page, q, nil
}
