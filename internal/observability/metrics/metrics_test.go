package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/salonbook-ui/internal/errors"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream(UpstreamCall{Op: "x"})
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.RoleResolution(ResultSuccess)
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Nil(t, New(false))
}

func TestObserveUpstream_ErrorClass(t *testing.T) {
	m := New(true)
	require.NotNil(t, m)

	m.ObserveUpstream(UpstreamCall{Op: "get_salon", Method: "GET", Status: 200, Duration: time.Millisecond})
	m.ObserveUpstream(UpstreamCall{Op: "get_salon", Method: "GET", Status: 404, Err: apperrors.NotFound("gone")})
	m.ObserveUpstream(UpstreamCall{Op: "get_salon", Method: "GET", Err: errors.New("dial")})

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	classes := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "salonbook_ui_upstream_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "error_class" {
					classes[lp.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{"": 1, "not_found": 1, "errors_errorstring": 1}, classes)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New(true)
	m.RoleResolution(ResultSuccess)
	m.ObserveHTTP("GET", "GET /dashboard", 200, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salonbook_ui_role_resolutions_total")
	assert.Contains(t, rec.Body.String(), "salonbook_ui_http_requests_total")
}
