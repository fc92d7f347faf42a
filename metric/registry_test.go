package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/inventory/errors"
)

func newTestCounter() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "inventory",
		Subsystem: "test",
		Name:      "ops_total",
		Help:      "test counter",
	})
}

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	require.NotNil(t, registry)
	require.NotNil(t, registry.PrometheusRegistry())
	require.NotNil(t, registry.CoreMetrics())
	assert.NotNil(t, registry.CoreMetrics().OperationsTotal)
	assert.NotNil(t, registry.CoreMetrics().ErrorsTotal)
}

func TestRegisterCounter(t *testing.T) {
	registry := NewMetricsRegistry()

	err := registry.RegisterCounter("mumbai", "ops", newTestCounter())
	require.NoError(t, err)

	// Same component/metric key must be rejected
	err = registry.RegisterCounter("mumbai", "ops", newTestCounter())
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	// Different component may reuse the metric name, but the collector
	// itself would collide in Prometheus, so use distinct options.
	other := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "inventory",
		Subsystem: "test",
		Name:      "other_ops_total",
		Help:      "test counter",
	})
	err = registry.RegisterCounter("delhi", "other_ops", other)
	assert.NoError(t, err)
}

func TestRegisterGaugeVec(t *testing.T) {
	registry := NewMetricsRegistry()

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "inventory",
		Subsystem: "test",
		Name:      "stock_level",
		Help:      "test gauge",
	}, []string{"product"})

	require.NoError(t, registry.RegisterGaugeVec("mumbai", "stock_level", gauge))
	gauge.WithLabelValues("P-1001").Set(42)
}

func TestUnregister(t *testing.T) {
	registry := NewMetricsRegistry()

	require.NoError(t, registry.RegisterCounter("mumbai", "ops", newTestCounter()))

	assert.True(t, registry.Unregister("mumbai", "ops"))
	assert.False(t, registry.Unregister("mumbai", "ops"))

	// Re-registration after unregister must succeed
	assert.NoError(t, registry.RegisterCounter("mumbai", "ops", newTestCounter()))
}

func TestCoreMetricsRecord(t *testing.T) {
	registry := NewMetricsRegistry()

	core := registry.CoreMetrics()
	core.RecordOperation("mumbai", "receive_shipment", "ok")
	core.RecordError("mumbai", "invalid")

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["inventory_catalog_operations_total"])
	assert.True(t, names["inventory_catalog_errors_total"])
}
