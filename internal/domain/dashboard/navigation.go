package dashboard

import (
	"strings"

	"github.com/target/salonbook-ui/internal/domain/auth"
)

// Variant names the menu shape chosen for a role/salon combination.
type Variant string

const (
	// VariantClient is the restricted menu for client accounts.
	VariantClient Variant = "client"
	// VariantNoSalon is the restricted menu for staff without a managed salon.
	VariantNoSalon Variant = "no-salon"
	// VariantFull is the menu for staff with a managed salon.
	VariantFull Variant = "full"
)

// NavItem is a selectable sidebar entry.
type NavItem struct {
	Tab   Tab
	Label string
	Icon  string
}

// Navigation is the sidebar model for one render.
type Navigation struct {
	Variant          Variant
	Items            []NavItem
	ShowLogout       bool
	ShowReviewWidget bool
}

var (
	navDashboard    = NavItem{Tab: TabDashboard, Label: "Dashboard", Icon: "home"}
	navMessages     = NavItem{Tab: TabMessages, Label: "Messages", Icon: "chat"}
	navSalonDetails = NavItem{Tab: TabSalonDetails, Label: "Salon Details", Icon: "store"}
	navSalonReviews = NavItem{Tab: TabSalonReviews, Label: "Salon Reviews", Icon: "star"}
)

// NavigationFor selects the sidebar variant. First match wins:
// clients get the restricted set, then anyone without a salon does, then
// everyone else gets the full set with salon entries hidden for professionals.
func NavigationFor(role auth.Role, salonID string) Navigation {
	nav := Navigation{
		Items:            []NavItem{navDashboard, navMessages},
		ShowLogout:       true,
		ShowReviewWidget: true,
	}

	switch {
	case role == auth.RoleClient:
		nav.Variant = VariantClient
	case strings.TrimSpace(salonID) == "":
		nav.Variant = VariantNoSalon
	default:
		nav.Variant = VariantFull
		if role != auth.RoleProfessional {
			nav.Items = append(nav.Items, navSalonDetails, navSalonReviews)
		}
	}
	return nav
}
