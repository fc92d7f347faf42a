// Package metric provides Prometheus metrics registration and exposition
// for inventory components.
//
// # Overview
//
// MetricsRegistry wraps a dedicated prometheus.Registry with core platform
// metrics (catalog operation and error counters), Go runtime collectors, and
// duplicate-registration protection keyed by component and metric name.
// Components register their own collectors through the MetricsRegistrar
// interface rather than touching the Prometheus registry directly.
//
// # Quick Start
//
//	registry := metric.NewMetricsRegistry()
//
//	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
//	    Namespace: "inventory",
//	    Subsystem: "warehouse",
//	    Name:      "stock_level",
//	    Help:      "Current stock level per product",
//	}, []string{"product"})
//
//	if err := registry.RegisterGaugeVec("mumbai", "stock_level", gauge); err != nil {
//	    return err
//	}
//
// # Exposition
//
// Server serves the registry over HTTP with /metrics, /health, and an index
// page:
//
//	server := metric.NewServer(9090, "/metrics", registry)
//	go func() { _ = server.Start() }()
//	defer server.Stop()
package metric
