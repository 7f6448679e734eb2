package config

// ObservabilityConfig groups configuration that controls metrics exposure.
type ObservabilityConfig struct {
	// MetricsEnabled exposes Prometheus metrics at /metrics.
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}
