package service

import (
	"context"

	"github.com/target/salonbook-ui/internal/domain/model"
)

// StaticStats serves the sample overview figures until the backend exposes analytics.
type StaticStats struct{}

// Overview returns the sample figures. salonID is ignored.
func (StaticStats) Overview(_ context.Context, _ string) (model.Overview, error) {
	return model.Overview{
		Stats: []model.StatCard{
			{Label: "Total Bookings", Value: "1,234", Trend: "+12%"},
			{Label: "New Clients", Value: "89", Trend: "+5%"},
			{Label: "Revenue", Value: "$4,567", Trend: "+8%"},
			{Label: "Reviews", Value: "45", Trend: "+3%"},
		},
		Weekly: model.ScaleBars([]model.ActivityBar{
			{Day: "Mon", Count: 12},
			{Day: "Tue", Count: 19},
			{Day: "Wed", Count: 15},
			{Day: "Thu", Count: 25},
			{Day: "Fri", Count: 22},
			{Day: "Sat", Count: 30},
			{Day: "Sun", Count: 18},
		}),
		Activity: []model.ActivityItem{
			{Title: "New booking", Detail: "Sarah Johnson booked a haircut", When: "2 hours ago"},
			{Title: "New review", Detail: "Michael Chen left a 5-star review", When: "5 hours ago"},
			{Title: "Payment received", Detail: "$85.00 from Emma Davis", When: "1 day ago"},
		},
	}, nil
}
