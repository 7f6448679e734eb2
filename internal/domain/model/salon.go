//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// Salon is the editable profile of a salon. Type is set at registration and read-only here.
type Salon struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// UpdateSalonRequest carries the editable salon fields.
type UpdateSalonRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Normalize trims surrounding whitespace from every field.
func (r *UpdateSalonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Description = strings.TrimSpace(r.Description)
}

// Validate checks required fields.
func (r *UpdateSalonRequest) Validate() error {
	r.Normalize()
	fe := apperrors.FieldErrors{}
	fe.Required("name", r.Name, "Salon name")
	return fe.Err()
}

// Address is a salon location.
type Address struct {
	ID         string `json:"_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Line renders the address on one line for lists.
func (a Address) Line() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// AddressInput creates or replaces an address.
type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Validate checks required fields.
func (in *AddressInput) Validate() error {
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)

	fe := apperrors.FieldErrors{}
	fe.Required("street", in.Street, "Street")
	fe.Required("city", in.City, "City")
	return fe.Err()
}

// SocialLink points at one of the salon's social profiles.
type SocialLink struct {
	ID       string `json:"_id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinkInput creates or replaces a social link.
type SocialLinkInput struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Validate checks required fields.
func (in *SocialLinkInput) Validate() error {
	in.Platform = strings.TrimSpace(in.Platform)
	in.URL = strings.TrimSpace(in.URL)

	fe := apperrors.FieldErrors{}
	fe.Required("platform", in.Platform, "Platform")
	fe.Required("url", in.URL, "URL")
	return fe.Err()
}

// SocialPlatforms lists the platforms offered in the social link form.
var SocialPlatforms = []string{"Instagram", "Facebook", "TikTok", "X", "YouTube", "Website"}

// SalonDetails bundles the data shown on the details sub-tab.
type SalonDetails struct {
	Salon       Salon
	Addresses   []Address
	SocialLinks []SocialLink
}
