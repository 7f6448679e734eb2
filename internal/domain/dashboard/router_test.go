package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/salonbook-ui/internal/domain/auth"
)

var allRoles = []auth.Role{
	auth.RoleUnknown, auth.RoleClient, auth.RoleProfessional, auth.RoleOwner, auth.RoleAdmin,
}

func TestRoute_ClientOnlyReachesOverviewAndMessages(t *testing.T) {
	for _, tab := range []Tab{TabSalonDetails, TabSalonReviews, Tab("billing"), Tab("")} {
		for _, salon := range []string{"", "42"} {
			d := Route(auth.RoleClient, tab, salon)
			assert.Equal(t, ContentAccessRestricted, d.Kind, "tab=%q salon=%q", tab, salon)
			assert.True(t, d.IsPlaceholder())
		}
	}

	assert.Equal(t, ContentOverview, Route(auth.RoleClient, TabDashboard, "").Kind)
	assert.Equal(t, ContentMessages, Route(auth.RoleClient, TabMessages, "42").Kind)
}

func TestRoute_SalonTabsWithoutSalon(t *testing.T) {
	for _, role := range allRoles {
		if role == auth.RoleClient {
			continue
		}
		for _, tab := range []Tab{TabSalonDetails, TabSalonReviews} {
			d := Route(role, tab, "")
			assert.Equal(t, ContentNoSalon, d.Kind, "role=%s tab=%s", role, tab)
			assert.Equal(t, role == auth.RoleProfessional, d.ShowProfessionalGuidance)
		}
	}
}

func TestRoute_SalonTabsWithSalon(t *testing.T) {
	assert.Equal(t, ContentSalonDetails, Route(auth.RoleOwner, TabSalonDetails, "42").Kind)
	assert.Equal(t, ContentSalonReviews, Route(auth.RoleAdmin, TabSalonReviews, "42").Kind)
	assert.Equal(t, ContentSalonDetails, Route(auth.RoleProfessional, TabSalonDetails, "42").Kind)
}

func TestRoute_UnknownTabFallsThrough(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleOwner, auth.RoleProfessional, auth.RoleUnknown} {
		d := Route(role, Tab("settings"), "42")
		assert.Equal(t, ContentUnknownTab, d.Kind)
		assert.Equal(t, Tab("settings"), d.Tab)
		assert.NotEmpty(t, d.Placeholder().Message)
	}
}

func TestDecision_Placeholder(t *testing.T) {
	pro := Route(auth.RoleProfessional, TabSalonDetails, "").Placeholder()
	owner := Route(auth.RoleOwner, TabSalonDetails, "").Placeholder()

	assert.NotEmpty(t, pro.Guidance)
	assert.Empty(t, owner.Guidance)
	assert.Equal(t, pro.Message, owner.Message)

	assert.Equal(t, Placeholder{}, Route(auth.RoleOwner, TabDashboard, "42").Placeholder())
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabDashboard, ParseTab(""))
	assert.Equal(t, TabSalonReviews, ParseTab(" salonReviews "))
	assert.Equal(t, Tab("whatever"), ParseTab("whatever"))
	assert.False(t, Tab("whatever").Known())
	assert.True(t, TabSalonDetails.SalonScoped())
	assert.False(t, TabMessages.SalonScoped())
}

func TestParseSalonSubTab(t *testing.T) {
	assert.Equal(t, SubTabDetails, ParseSalonSubTab(""))
	assert.Equal(t, SubTabDetails, ParseSalonSubTab("bogus"))
	assert.Equal(t, SubTabFAQs, ParseSalonSubTab("FAQS"))
	assert.Equal(t, "Portfolio", SubTabPortfolio.Label())
}
