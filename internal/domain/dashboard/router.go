package dashboard

import (
	"strings"

	"github.com/target/salonbook-ui/internal/domain/auth"
)

// ContentKind is what the content region renders for a tab.
type ContentKind string

const (
	ContentOverview         ContentKind = "overview"
	ContentMessages         ContentKind = "messages"
	ContentSalonDetails     ContentKind = "salon-details"
	ContentSalonReviews     ContentKind = "salon-reviews"
	ContentAccessRestricted ContentKind = "access-restricted"
	ContentNoSalon          ContentKind = "no-salon"
	ContentUnknownTab       ContentKind = "unknown-tab"
)

// Decision is the router's verdict for one render.
type Decision struct {
	Kind ContentKind
	Tab  Tab
	// ShowProfessionalGuidance adds the extra no-salon line shown to professionals.
	ShowProfessionalGuidance bool
}

// IsPlaceholder reports whether the decision renders static copy instead of a section.
func (d Decision) IsPlaceholder() bool {
	switch d.Kind {
	case ContentAccessRestricted, ContentNoSalon, ContentUnknownTab:
		return true
	}
	return false
}

// Route decides what to render for role and tab. It never rejects a tab:
// clients asking for anything but the overview or messages get the
// access-restricted placeholder, salon tabs without a salon get an
// informational placeholder, and unknown tabs get the default placeholder.
func Route(role auth.Role, tab Tab, salonID string) Decision {
	d := Decision{Tab: tab}

	if role == auth.RoleClient && tab != TabDashboard && tab != TabMessages {
		d.Kind = ContentAccessRestricted
		return d
	}

	if !tab.Known() {
		d.Kind = ContentUnknownTab
		return d
	}
	if tab.SalonScoped() && strings.TrimSpace(salonID) == "" {
		d.Kind = ContentNoSalon
		d.ShowProfessionalGuidance = role == auth.RoleProfessional
		return d
	}

	switch tab {
	case TabDashboard:
		d.Kind = ContentOverview
	case TabMessages:
		d.Kind = ContentMessages
	case TabSalonDetails:
		d.Kind = ContentSalonDetails
	case TabSalonReviews:
		d.Kind = ContentSalonReviews
	}
	return d
}

// Placeholder is the static copy for placeholder decisions.
type Placeholder struct {
	Title    string
	Message  string
	Guidance string
}

// Placeholder returns the copy for d. Non-placeholder decisions return the zero value.
func (d Decision) Placeholder() Placeholder {
	switch d.Kind {
	case ContentAccessRestricted:
		return Placeholder{
			Title:   "Access Restricted",
			Message: "This section is only available to salon owners and professionals.",
		}
	case ContentNoSalon:
		p := Placeholder{
			Title:   "No salon yet",
			Message: "There is no salon associated with your account yet.",
		}
		if d.ShowProfessionalGuidance {
			p.Guidance = "Ask your salon owner to add you to their salon to manage its details and reviews."
		}
		return p
	case ContentUnknownTab:
		return Placeholder{
			Title:   "Select a section",
			Message: "Pick an entry from the sidebar to get started.",
		}
	}
	return Placeholder{}
}
