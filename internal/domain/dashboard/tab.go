// Package dashboard holds the role-gated navigation and tab dispatch rules
// for the salon dashboard shell. It is pure: no I/O, no HTTP.
package dashboard

import "strings"

// Tab identifies a dashboard section. Unrecognized identifiers are kept
// verbatim so the router can fall through to its default placeholder.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabMessages     Tab = "messages"
	TabSalonDetails Tab = "salonDetails"
	TabSalonReviews Tab = "salonReviews"
)

// DefaultTab is selected for a fresh workspace.
const DefaultTab = TabDashboard

// ParseTab trims the identifier and defaults an empty value to DefaultTab.
func ParseTab(s string) Tab {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTab
	}
	return Tab(s)
}

// Known reports whether t names one of the dashboard sections.
func (t Tab) Known() bool {
	switch t {
	case TabDashboard, TabMessages, TabSalonDetails, TabSalonReviews:
		return true
	}
	return false
}

// SalonScoped reports whether t needs a managed salon to render.
func (t Tab) SalonScoped() bool {
	return t == TabSalonDetails || t == TabSalonReviews
}

// SalonSubTab selects a section of the salon details page.
type SalonSubTab string

const (
	SubTabDetails   SalonSubTab = "details"
	SubTabPortfolio SalonSubTab = "portfolio"
	SubTabServices  SalonSubTab = "services"
	SubTabFAQs      SalonSubTab = "faqs"
)

// SalonSubTabs lists the sub-tabs in display order.
var SalonSubTabs = []SalonSubTab{SubTabDetails, SubTabPortfolio, SubTabServices, SubTabFAQs}

// ParseSalonSubTab maps s to a sub-tab, defaulting to SubTabDetails.
func ParseSalonSubTab(s string) SalonSubTab {
	switch SalonSubTab(strings.ToLower(strings.TrimSpace(s))) {
	case SubTabPortfolio:
		return SubTabPortfolio
	case SubTabServices:
		return SubTabServices
	case SubTabFAQs:
		return SubTabFAQs
	default:
		return SubTabDetails
	}
}

// Label returns the human readable sub-tab name.
func (s SalonSubTab) Label() string {
	switch s {
	case SubTabPortfolio:
		return "Portfolio"
	case SubTabServices:
		return "Services"
	case SubTabFAQs:
		return "FAQs"
	default:
		return "Details"
	}
}
