package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/target/salonbook-ui/internal/domain/dashboard"
	"github.com/target/salonbook-ui/internal/domain/model"
)

// reviewQueryFrom reads paging, rating filter and sort order from the query string.
func reviewQueryFrom(r *http.Request) model.ReviewQuery {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	rating, _ := strconv.Atoi(q.Get("rating"))
	query := model.ReviewQuery{
		Page:   page,
		Rating: rating,
		Sort:   model.ParseReviewSort(q.Get("sort")),
	}
	query.Normalize()
	return query
}

// reviewsURL builds a link to the review list keeping the active filter.
func reviewsURL(q model.ReviewQuery, page int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if q.Rating > 0 {
		v.Set("rating", strconv.Itoa(q.Rating))
	}
	v.Set("sort", string(q.Sort))
	return "/dashboard/reviews?" + v.Encode()
}

// ratingBar is one row of the rating breakdown.
type ratingBar struct {
	Stars   int
	Count   int
	Percent int
}

func ratingBars(p model.ReviewPage) []ratingBar {
	out := make([]ratingBar, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		n := p.RatingCounts[stars]
		pct := 0
		if p.Total > 0 {
			pct = n * 100 / p.Total
		}
		out = append(out, ratingBar{Stars: stars, Count: n, Percent: pct})
	}
	return out
}

func (h *UIHandlers) loadReviews(ctx context.Context, salonID string, q model.ReviewQuery, b *TemplateDataBuilder) error {
	page, applied, err := h.Reviews.List(ctx, salonID, q)
	b.With("Reviews", page).
		With("ReviewQuery", applied).
		With("RatingBars", ratingBars(page)).
		With("ReviewSorts", []model.ReviewSort{model.ReviewSortNewest, model.ReviewSortHighest, model.ReviewSortLowest})
	if page.HasPrev() {
		b.With("PrevURL", reviewsURL(applied, page.Page-1))
	}
	if page.HasNext() {
		b.With("NextURL", reviewsURL(applied, page.Page+1))
	}
	return err
}

// SalonReviews renders the review list for the managed salon.
// GET /dashboard/reviews?page=&rating=&sort=.
func (h *UIHandlers) SalonReviews(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.currentSession(w, r)
	if !ok {
		return
	}
	v, ok := h.guardSection(w, r, sess, dashboard.TabSalonReviews)
	if !ok {
		return
	}
	b := h.dashboardData(r, v)
	err := h.loadReviews(r.Context(), sess.SalonID, reviewQueryFrom(r), b)
	h.respondSection(w, r, v, b, err)
}
