package salonapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/target/salonbook-ui/internal/domain/model"
)

// ListReviews reads one page of reviews with the backend's aggregate figures.
func (c *Client) ListReviews(ctx context.Context, salonID string, q model.ReviewQuery) (model.ReviewPage, error) {
	q.Normalize()
	query := map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
		"sort":  string(q.Sort),
	}
	if q.Rating > 0 {
		query["rating"] = strconv.Itoa(q.Rating)
	}

	var out model.ReviewPage
	err := c.do(ctx, call{
		op: "list_reviews", method: http.MethodGet, path: "/salons/{salonId}/reviews",
		params: salonParams(salonID), query: query, out: &out,
	})
	if err != nil {
		return model.ReviewPage{}, err
	}
	if out.Page == 0 {
		out.Page = q.Page
	}
	return out, nil
}
