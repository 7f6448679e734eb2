package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/salonbook-ui/internal/domain/auth"
	"github.com/target/salonbook-ui/internal/http/ui/viewmodel"
	"github.com/target/salonbook-ui/internal/testutil"
)

func TestNewTemplateData_Anonymous(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	data := NewTemplateData(r, PageMeta{Title: "Sign in", CurrentPage: PageLogin}).Build()

	assert.Equal(t, "Sign in", data["Title"])
	assert.Equal(t, PageLogin, data["CurrentPage"])
	assert.Equal(t, false, data["IsAuthenticated"])
	assert.NotContains(t, data, "User")
	assert.Equal(t, map[string]string{}, data["Errors"])
	assert.Equal(t, map[string]string{}, data["Form"])
	assert.Equal(t, "", data["FormKey"])
}

func TestNewTemplateData_WithSessionAndForm(t *testing.T) {
	sess := testutil.NewSession().WithRole(auth.RoleAdmin).Build()
	r := httptest.NewRequest(http.MethodGet, "/admin/registrations", nil)
	r = r.WithContext(SetSessionInContext(r.Context(), &sess))

	data := NewTemplateData(r, PageMeta{Title: "Registrations", CurrentPage: PageAdminRegistrations}).
		WithFieldErrors(map[string]string{"question": "Question is required"}).
		WithForm("faq:new", map[string]string{"answer": "Yes"}).
		WithError("Please fix the highlighted fields.").
		With("Status", "pending").
		Build()

	assert.Equal(t, true, data["IsAuthenticated"])
	assert.Equal(t, true, data["IsAdmin"])
	user, ok := data["User"].(*viewmodel.User)
	if assert.True(t, ok) {
		assert.Equal(t, "admin", user.Role)
	}
	assert.Equal(t, "faq:new", data["FormKey"])
	assert.Equal(t, map[string]string{"answer": "Yes"}, data["Form"])
	assert.Equal(t, map[string]string{"question": "Question is required"}, data["Errors"])
	notice, ok := data["Notice"].(*viewmodel.Notice)
	if assert.True(t, ok) {
		assert.Equal(t, viewmodel.SeverityError, notice.Severity)
	}
	assert.Equal(t, "pending", data["Status"])
}
