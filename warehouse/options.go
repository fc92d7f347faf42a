package warehouse

import (
	"github.com/c360/inventory/metric"
)

// Option configures warehouse behavior using the functional options pattern.
type Option func(*options)

// options holds internal configuration for warehouse instances.
// Stats are ALWAYS collected; Prometheus export is optional.
type options struct {
	// metricsReg is optional - if provided, warehouse activity is also
	// exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry
}

// WithMetrics enables Prometheus metrics export for warehouse activity.
// If registry is nil, this option is ignored.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(opts *options) {
		if registry != nil {
			opts.metricsReg = registry
		}
	}
}

// applyOptions applies functional options to create the final configuration.
func applyOptions(opts ...Option) *options {
	options := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}
