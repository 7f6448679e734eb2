package httpx

import "github.com/target/salonbook-ui/internal/domain/dashboard"

// CurrentPage constants identify the top-level pages rendered inside the layout.
const (
	PageLogin              = "login"
	PageRegister           = "register"
	PageDashboard          = "dashboard"
	PageAdminRegistrations = "admin-registrations"
	PageAccessDenied       = "access-denied"
)

// Section constants identify fragments swapped into the dashboard content region.
const (
	SectionOverview     = string(dashboard.ContentOverview)
	SectionMessages     = string(dashboard.ContentMessages)
	SectionSalonDetails = string(dashboard.ContentSalonDetails)
	SectionSalonReviews = string(dashboard.ContentSalonReviews)
	SectionPlaceholder  = "placeholder"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageLogin:              "login-content",
	PageRegister:           "register-content",
	PageDashboard:          "dashboard-content",
	PageAdminRegistrations: "admin-registrations-content",
	PageAccessDenied:       "access-denied-content",

	SectionOverview:     "overview-content",
	SectionMessages:     "messages-content",
	SectionSalonDetails: "salon-details-content",
	SectionSalonReviews: "salon-reviews-content",
	SectionPlaceholder:  "placeholder-content",

	string(dashboard.SubTabDetails):   "subtab-details-content",
	string(dashboard.SubTabPortfolio): "subtab-portfolio-content",
	string(dashboard.SubTabServices):  "subtab-services-content",
	string(dashboard.SubTabFAQs):      "subtab-faqs-content",
}

// ContentTemplateMap returns the mapping from page or section to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for a page or section.
// Unknown keys render the generic placeholder.
func ContentTemplateFor(key string) string {
	if name, ok := ContentTemplateMap()[key]; ok {
		return name
	}
	return "placeholder-content"
}

// sectionFor maps a content router decision to its fragment key.
func sectionFor(d dashboard.Decision) string {
	if d.IsPlaceholder() {
		return SectionPlaceholder
	}
	return string(d.Kind)
}
