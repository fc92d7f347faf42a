// Package warehouse provides a concurrent, mutable product catalog with
// low-stock alerting and snapshot transfer.
//
// # Overview
//
// A Warehouse is an associative store of Products guarded by a single
// reader-writer lock. The lock protects the shape of the catalog map only:
// each Product carries its own mutex for quantity state, so concurrent
// shipments and orders targeting different products serialize only for the
// brief structural lookup.
//
// # Key Concepts
//
// Product:
//   - Immutable id, display name, and reorder threshold
//   - Mutable non-negative quantity with atomic Increase/Decrease
//   - Increase past the int64 range fails; Decrease below zero fails;
//     either failure leaves the quantity untouched
//
// Warehouse:
//   - AddProduct: exclusive lock, duplicate ids rejected
//   - ReceiveShipment / FulfillOrder: shared lock for lookup only, then the
//     product's own mutation
//   - ListSnapshot / Describe: shared lock, defensive value copies
//   - PutOrReplace: unconditional upsert for bulk restore, no notification
//
// # Low-Stock Notification
//
// After every operation that changes a quantity, the warehouse re-reads the
// product's quantity and, when it is at or below the reorder threshold
// (inclusive), invokes every registered StockObserver in registration
// order. The fan-out runs outside the structural lock, and each observer is
// isolated: a panicking observer neither blocks delivery to the others nor
// fails the triggering operation. The observer list is append-only and
// copy-on-write, so registration is safe concurrently with delivery.
//
// PutOrReplace and plain reads never notify.
//
// # Snapshot Transfer
//
// Export and Import move a catalog through an ordered sequence of text
// records in the fixed wire format "id,name,quantity,threshold", with
// commas in the name escaped as `\,`. Import aborts on the first malformed
// record and returns no partial warehouse. An export/import round trip
// reproduces the same set of products regardless of insertion order.
//
// # Observability
//
// Every warehouse collects operation statistics (shipments, orders,
// rejections, alerts, product counts). Prometheus export is optional:
//
//	registry := metric.NewMetricsRegistry()
//	wh, err := warehouse.New("Mumbai", warehouse.WithMetrics(registry))
//
// # Error Classification
//
// Following the errors package patterns:
//   - WrapInvalid: blank ids, bad amounts, duplicates, unknown products,
//     insufficient stock, overflow, malformed records
//   - WrapTransient: metrics registration failures
package warehouse
