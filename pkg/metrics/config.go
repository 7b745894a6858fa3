package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every asyncflow metric name.
const DefaultNamespace = "asyncflow"

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry is the Prometheus registry to use. If nil, uses prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Namespace overrides the default "asyncflow" namespace for metrics.
	// It only applies to custom registries.
	Namespace string

	// Labels are additional constant labels added to all metrics of a custom registry.
	Labels prometheus.Labels
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Registry:  nil,
		Namespace: DefaultNamespace,
		Labels:    nil,
	}
}
