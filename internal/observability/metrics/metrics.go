// Package metrics exposes Prometheus metrics for the dashboard and its calls to the backend API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/target/salonbook-ui/internal/errors"
	obserrors "github.com/target/salonbook-ui/internal/observability/errors"
)

const namespace = "salonbook_ui"

// Result constants for metric labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultNoop    = "noop"
)

// Metrics owns a private registry. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	upstreamTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpTotal        *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	roleResolutions  *prometheus.CounterVec
}

// New builds the metric set. It returns nil when disabled.
func New(enabled bool) *Metrics {
	if !enabled {
		return nil
	}

	m := &Metrics{registry: prometheus.NewRegistry()}
	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m.upstreamTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls made to the salon backend API",
		},
		[]string{"op", "method", "status_code", "error_class"},
	)
	m.upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the salon backend API",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"op", "method"},
	)
	m.httpTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served",
		},
		[]string{"method", "route", "status_code"},
	)
	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.roleResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_resolutions_total",
			Help:      "Identity lookups performed to resolve a session role",
		},
		[]string{"result"},
	)

	m.registry.MustRegister(m.upstreamTotal, m.upstreamDuration, m.httpTotal, m.httpDuration, m.roleResolutions)
	return m
}

// UpstreamCall describes one call to the backend API.
type UpstreamCall struct {
	Op       string
	Method   string
	Status   int
	Duration time.Duration
	Err      error
}

// ObserveUpstream records a backend API call.
func (m *Metrics) ObserveUpstream(c UpstreamCall) {
	if m == nil {
		return
	}
	class := ""
	if c.Err != nil {
		class = string(apperrors.GetCode(c.Err))
		if class == "" {
			class = obserrors.Classify(c.Err)
		}
	}
	m.upstreamTotal.WithLabelValues(c.Op, c.Method, strconv.Itoa(c.Status), class).Inc()
	m.upstreamDuration.WithLabelValues(c.Op, c.Method).Observe(c.Duration.Seconds())
}

// ObserveHTTP records a served request. route is the matched mux pattern.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RoleResolution records the outcome of an identity lookup.
func (m *Metrics) RoleResolution(result string) {
	if m == nil {
		return
	}
	m.roleResolutions.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
