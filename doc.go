// Package inventory provides a concurrent warehouse inventory tracking library
// built around a thread-safe product catalog with low-stock alerting.
//
// # Architecture
//
// The library is organized around one core package and a set of thin
// collaborators that consume its public surface:
//
//	┌─────────────────────────────────────┐
//	│          cmd/inventoryd             │  Demo driver
//	│  (config, logging, metrics server)  │
//	└─────────────────────────────────────┘
//	           ↓ drives
//	┌─────────────────────────────────────┐
//	│           warehouse                 │  Concurrent catalog,
//	│  (products, observers, snapshots)   │  low-stock fan-out
//	└─────────────────────────────────────┘
//	           ↑ consumed by
//	┌──────────────┬──────────────────────┐
//	│   registry   │      filestore       │  Aggregation and
//	│ (multi-site) │  (text persistence)  │  persistence glue
//	└──────────────┴──────────────────────┘
//
// # Concurrency Model
//
// Each Warehouse guards the shape of its catalog map with a single
// sync.RWMutex. Quantity state lives on the Product itself behind an
// independent mutex, so concurrent shipments and orders against different
// products only serialize for the brief structural lookup. Low-stock
// observers run outside the structural lock and are individually isolated:
// a failing observer never blocks delivery to the others and never fails
// the mutation that triggered it.
//
// # Framework Packages
//
// Core:
//   - warehouse: Product and Warehouse types, observer protocol, snapshot codec
//
// Collaborators:
//   - registry: named warehouses, cross-site aggregation and reporting
//   - filestore: text-file save/load of warehouse snapshots
//   - alert: ready-made stock observers (slog, Prometheus, journal)
//
// Infrastructure:
//   - errors: structured error handling and classification
//   - metric: Prometheus metrics registry and HTTP exposition
//   - config: YAML configuration loading and validation
//
// # Quick Start
//
//	wh, _ := warehouse.New("Mumbai")
//	_ = wh.RegisterObserver(alert.Log(slog.Default()))
//
//	p, _ := warehouse.NewProduct("P-1001", "Laptop", 0, 5)
//	_ = wh.AddProduct(p)
//	_ = wh.ReceiveShipment("P-1001", 10)
//	_ = wh.FulfillOrder("P-1001", 6) // quantity 4 <= threshold 5: alert fires
//
// # Binary
//
// cmd/inventoryd is a demonstration driver, not a service: it seeds
// warehouses from a YAML config, exercises concurrent shipments and orders,
// round-trips a warehouse through the filestore, and prints a central
// report. It exists to show the wiring, and the core never depends on it.
package inventory
