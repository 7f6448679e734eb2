package viewmodel

import "github.com/target/salonbook-ui/internal/domain/dashboard"

// SidebarItem is one rendered navigation entry.
type SidebarItem struct {
	Tab    string
	Label  string
	Icon   string
	Active bool
}

// Sidebar is the rendered navigation for the dashboard shell.
type Sidebar struct {
	Variant    string
	Items      []SidebarItem
	ShowLogout bool
	// ShowReviewWidget renders the Get Review button, which copies the
	// current page URL in the browser.
	ShowReviewWidget bool
}

// NewSidebar projects a navigation model onto the sidebar, marking active.
func NewSidebar(nav dashboard.Navigation, active dashboard.Tab) *Sidebar {
	sb := &Sidebar{
		Variant:          string(nav.Variant),
		Items:            make([]SidebarItem, 0, len(nav.Items)),
		ShowLogout:       nav.ShowLogout,
		ShowReviewWidget: nav.ShowReviewWidget,
	}
	for _, it := range nav.Items {
		sb.Items = append(sb.Items, SidebarItem{
			Tab:    string(it.Tab),
			Label:  it.Label,
			Icon:   it.Icon,
			Active: it.Tab == active,
		})
	}
	return sb
}
