//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strconv"
	"strings"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

// Service is a bookable salon service.
type Service struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// PriceLabel renders the price for display.
func (s Service) PriceLabel() string {
	return "$" + strconv.FormatFloat(s.Price, 'f', 2, 64)
}

// ServiceInput creates or replaces a service. Price and Duration are kept as
// submitted so the form can be re-rendered verbatim after a validation error.
type ServiceInput struct {
	Name        string
	Price       string
	Duration    string
	Description string
	Image       *ImageUpload
}

// Validate checks required fields and numeric formats.
func (in *ServiceInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Price = strings.TrimSpace(in.Price)
	in.Duration = strings.TrimSpace(in.Duration)
	in.Description = strings.TrimSpace(in.Description)

	fe := apperrors.FieldErrors{}
	fe.Required("name", in.Name, "Service name")
	fe.Required("price", in.Price, "Price")
	if in.Price != "" {
		if p, err := strconv.ParseFloat(in.Price, 64); err != nil || p < 0 {
			fe.Add("price", "Price must be a positive number")
		}
	}
	if in.Duration != "" {
		if d, err := strconv.Atoi(in.Duration); err != nil || d < 0 {
			fe.Add("duration", "Duration must be a whole number of minutes")
		}
	}
	return fe.Err()
}

// Fields returns the multipart text fields sent to the backend.
func (in *ServiceInput) Fields() map[string]string {
	f := map[string]string{
		"name":        in.Name,
		"price":       in.Price,
		"description": in.Description,
	}
	if in.Duration != "" {
		f["duration"] = in.Duration
	}
	return f
}
