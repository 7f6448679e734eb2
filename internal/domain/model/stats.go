//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// StatCard is one headline figure on the overview.
type StatCard struct {
	Label string
	Value string
	Trend string
}

// ActivityBar is one day in the weekly activity chart.
type ActivityBar struct {
	Day   string
	Count int
	// Percent is Count relative to the busiest day, 0..100.
	Percent int
}

// ActivityItem is an entry in the recent activity list.
type ActivityItem struct {
	Title  string
	Detail string
	When   string
}

// Overview is the dashboard landing content.
type Overview struct {
	Stats    []StatCard
	Weekly   []ActivityBar
	Activity []ActivityItem
}

// ScaleBars fills Percent relative to the largest count.
func ScaleBars(bars []ActivityBar) []ActivityBar {
	peak := 0
	for _, b := range bars {
		if b.Count > peak {
			peak = b.Count
		}
	}
	out := make([]ActivityBar, len(bars))
	for i, b := range bars {
		out[i] = b
		if peak > 0 {
			out[i].Percent = b.Count * 100 / peak
		}
	}
	return out
}
