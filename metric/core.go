package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all platform-level metrics (not warehouse-specific)
type Metrics struct {
	// Catalog operation metrics
	OperationsTotal *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all platform metrics
func NewMetrics() *Metrics {
	return &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "inventory",
				Subsystem: "catalog",
				Name:      "operations_total",
				Help:      "Total number of catalog operations",
			},
			[]string{"warehouse", "operation", "status"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "inventory",
				Subsystem: "catalog",
				Name:      "errors_total",
				Help:      "Total number of catalog operation errors by class",
			},
			[]string{"warehouse", "class"},
		),
	}
}

// RecordOperation increments the operation counter for a warehouse
func (m *Metrics) RecordOperation(warehouse, operation, status string) {
	m.OperationsTotal.WithLabelValues(warehouse, operation, status).Inc()
}

// RecordError increments the error counter for a warehouse by error class
func (m *Metrics) RecordError(warehouse, class string) {
	m.ErrorsTotal.WithLabelValues(warehouse, class).Inc()
}
