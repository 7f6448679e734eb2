package salonapi

import (
	"context"
	"net/http"

	"github.com/target/salonbook-ui/internal/domain/model"
)

const (
	pathFAQs = "/salons/{salonId}/faqs"
	pathFAQ  = "/salons/{salonId}/faqs/{faqId}"
)

// ListFAQs reads the salon's FAQs.
func (c *Client) ListFAQs(ctx context.Context, salonID string) ([]model.FAQ, error) {
	var out []model.FAQ
	err := c.do(ctx, call{op: "list_faqs", method: http.MethodGet, path: pathFAQs, params: salonParams(salonID), out: &out})
	return out, err
}

// CreateFAQ adds a FAQ.
func (c *Client) CreateFAQ(ctx context.Context, salonID string, in model.FAQInput) error {
	return c.do(ctx, call{op: "create_faq", method: http.MethodPost, path: pathFAQs, params: salonParams(salonID), body: in})
}

// UpdateFAQ replaces a FAQ.
func (c *Client) UpdateFAQ(ctx context.Context, salonID, faqID string, in model.FAQInput) error {
	return c.do(ctx, call{
		op: "update_faq", method: http.MethodPut, path: pathFAQ,
		params: salonParams(salonID, "faqId", faqID), body: in,
	})
}

// DeleteFAQ removes a FAQ.
func (c *Client) DeleteFAQ(ctx context.Context, salonID, faqID string) error {
	return c.do(ctx, call{
		op: "delete_faq", method: http.MethodDelete, path: pathFAQ,
		params: salonParams(salonID, "faqId", faqID),
	})
}
