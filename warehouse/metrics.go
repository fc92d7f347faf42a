package warehouse

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/inventory/metric"
)

// warehouseMetrics holds Prometheus metrics for one warehouse.
type warehouseMetrics struct {
	// Counter metrics - incremented alongside the always-on statistics
	shipments  prometheus.Counter
	orders     prometheus.Counter
	rejections prometheus.Counter
	alerts     *prometheus.CounterVec

	// Gauge metrics - updated on operations
	stockLevel *prometheus.GaugeVec
	products   prometheus.Gauge
}

// newWarehouseMetrics creates and registers per-warehouse metrics with the
// provided registry. The warehouse name becomes the component label.
func newWarehouseMetrics(registry *metric.MetricsRegistry, name string) (*warehouseMetrics, error) {
	m := &warehouseMetrics{
		shipments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "shipments_total",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Total number of shipment receipts",
		}),
		orders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "orders_total",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Total number of fulfilled orders",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "rejections_total",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Total number of rejected stock mutations",
		}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "low_stock_alerts_total",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Total number of low-stock alerts per product",
		}, []string{"product"}),
		stockLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "stock_level",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Current stock level per product",
		}, []string{"product"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "inventory",
			Subsystem:   "warehouse",
			Name:        "products",
			ConstLabels: prometheus.Labels{"warehouse": name},
			Help:        "Current number of products in the catalog",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "shipments", m.shipments); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "orders", m.orders); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "rejections", m.rejections); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec(name, "low_stock_alerts", m.alerts); err != nil {
		return nil, err
	}
	if err := registry.RegisterGaugeVec(name, "stock_level", m.stockLevel); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "products", m.products); err != nil {
		return nil, err
	}

	return m, nil
}

// recordShipment increments the shipment counter.
func (m *warehouseMetrics) recordShipment() {
	m.shipments.Inc()
}

// recordOrder increments the order counter.
func (m *warehouseMetrics) recordOrder() {
	m.orders.Inc()
}

// recordRejection increments the rejection counter.
func (m *warehouseMetrics) recordRejection() {
	m.rejections.Inc()
}

// recordAlert increments the low-stock alert counter for a product.
func (m *warehouseMetrics) recordAlert(productID string) {
	m.alerts.WithLabelValues(productID).Inc()
}

// setStock updates the stock-level gauge for a product.
func (m *warehouseMetrics) setStock(productID string, quantity int64) {
	m.stockLevel.WithLabelValues(productID).Set(float64(quantity))
}

// updateProducts updates the product-count gauge.
func (m *warehouseMetrics) updateProducts(count int) {
	m.products.Set(float64(count))
}
