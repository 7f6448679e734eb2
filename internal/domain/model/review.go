//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// DefaultReviewLimit is the page size used when none is requested.
const DefaultReviewLimit = 10

const maxReviewLimit = 50

// ReviewSort orders the review list.
type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
)

// ParseReviewSort normalizes s, falling back to newest.
func ParseReviewSort(s string) ReviewSort {
	switch ReviewSort(strings.ToLower(strings.TrimSpace(s))) {
	case ReviewSortHighest:
		return ReviewSortHighest
	case ReviewSortLowest:
		return ReviewSortLowest
	default:
		return ReviewSortNewest
	}
}

// ReviewQuery controls paging and filtering of the review list.
// Rating 0 means all ratings.
type ReviewQuery struct {
	Page   int
	Limit  int
	Rating int
	Sort   ReviewSort
}

// Normalize clamps the query to supported values.
func (q *ReviewQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultReviewLimit
	}
	if q.Limit > maxReviewLimit {
		q.Limit = maxReviewLimit
	}
	if q.Rating < 0 || q.Rating > 5 {
		q.Rating = 0
	}
	q.Sort = ParseReviewSort(string(q.Sort))
}

// Review is a client's rating of a salon.
type Review struct {
	ID         string    `json:"_id"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Stars renders the rating as filled/empty stars.
func (r Review) Stars() string {
	n := r.Rating
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// ReviewPage is one page of reviews plus aggregate figures.
type ReviewPage struct {
	Reviews       []Review    `json:"reviews"`
	Page          int         `json:"page"`
	TotalPages    int         `json:"totalPages"`
	Total         int         `json:"total"`
	AverageRating float64     `json:"averageRating"`
	RatingCounts  map[int]int `json:"ratingCounts"`
}

// HasPrev reports whether a previous page exists.
func (p ReviewPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p ReviewPage) HasNext() bool { return p.Page < p.TotalPages }
