package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/domain/dashboard"
)

func sidebarTabs(sb *Sidebar) []string {
	out := make([]string, 0, len(sb.Items))
	for _, it := range sb.Items {
		out = append(out, it.Tab)
	}
	return out
}

func TestNewSidebar(t *testing.T) {
	nav := dashboard.NavigationFor(auth.RoleOwner, "42")
	sb := NewSidebar(nav, dashboard.TabSalonReviews)

	assert.Equal(t, "full", sb.Variant)
	assert.Equal(t, []string{"dashboard", "messages", "salonDetails", "salonReviews"}, sidebarTabs(sb))
	for _, it := range sb.Items {
		assert.Equal(t, it.Tab == "salonReviews", it.Active, it.Tab)
	}
	assert.True(t, sb.ShowLogout)
	assert.True(t, sb.ShowReviewWidget)
}

func TestNewSidebar_Professional(t *testing.T) {
	sb := NewSidebar(dashboard.NavigationFor(auth.RoleProfessional, "42"), dashboard.TabDashboard)
	assert.Equal(t, []string{"dashboard", "messages"}, sidebarTabs(sb))
}

func TestUserInitials(t *testing.T) {
	assert.Equal(t, "OO", (&User{Name: "Olivia Owner"}).Initials())
	assert.Equal(t, "ae", (&User{Email: "ana@example.com"}).Initials())
	assert.Equal(t, "", (*User)(nil).Initials())
}
