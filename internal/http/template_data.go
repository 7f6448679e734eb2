package httpx

import (
	"net/http"

	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
)

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithNotice sets the banner shown above the content. A nil notice is ignored.
func (b *TemplateDataBuilder) WithNotice(n *viewmodel.Notice) *TemplateDataBuilder {
	if n != nil {
		b.data["Notice"] = n
	}
	return b
}

// WithError sets an error banner with msg.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	return b.WithNotice(viewmodel.NewNotice(viewmodel.SeverityError, msg))
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// WithForm records which form was submitted and its raw values so it can be
// re-rendered open and filled in after a validation error.
func (b *TemplateDataBuilder) WithForm(key string, values map[string]string) *TemplateDataBuilder {
	b.data["FormKey"] = key
	if values != nil {
		b.data["Form"] = values
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
