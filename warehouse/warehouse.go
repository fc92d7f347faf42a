package warehouse

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/c360/inventory/errors"
)

// emptyInventory is the fixed placeholder Describe returns for a
// warehouse with no products.
const emptyInventory = "(empty)"

// Warehouse is a concurrent catalog of products. A single RWMutex guards
// the shape of the catalog map; each product's quantity self-synchronizes,
// so stock movements on already-located products proceed without excluding
// readers of other products.
type Warehouse struct {
	name string

	mu      sync.RWMutex
	catalog map[string]*Product

	observers observerList

	stats   *Statistics      // ALWAYS initialized
	metrics *warehouseMetrics // Optional, if metrics enabled
}

// New creates an empty warehouse with the given display name.
// Returns an error if the name is blank or if metrics registration fails
// when requested.
func New(name string, opts ...Option) (*Warehouse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: warehouse name is required", errors.ErrInvalidArgument),
			"Warehouse", "New", "name validation")
	}

	options := applyOptions(opts...)

	var metrics *warehouseMetrics
	if options.metricsReg != nil {
		var err error
		metrics, err = newWarehouseMetrics(options.metricsReg, name)
		if err != nil {
			return nil, errors.WrapTransient(err, "Warehouse", "New", "metrics registration")
		}
	}

	return &Warehouse{
		name:    name,
		catalog: make(map[string]*Product),
		stats:   NewStatistics(),
		metrics: metrics,
	}, nil
}

// Name returns the warehouse display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Stats returns the always-on operation statistics.
func (w *Warehouse) Stats() *Statistics {
	return w.stats
}

// Size returns the current number of products in the catalog.
func (w *Warehouse) Size() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.catalog)
}

// RegisterObserver appends a low-stock observer. Observers are notified in
// registration order and cannot be removed for the lifetime of the
// warehouse. Safe to call concurrently with notification delivery.
func (w *Warehouse) RegisterObserver(obs StockObserver) error {
	if obs == nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: observer cannot be nil", errors.ErrInvalidArgument),
			"Warehouse", "RegisterObserver", "observer validation")
	}
	w.observers.append(obs)
	return nil
}

// AddProduct inserts a new product into the catalog. Fails if a product
// with the same id already exists. On success the low-stock condition is
// evaluated outside the structural lock, so a product added at or below
// its threshold alerts immediately.
func (w *Warehouse) AddProduct(p *Product) error {
	if p == nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: product cannot be nil", errors.ErrInvalidArgument),
			"Warehouse", "AddProduct", "product validation")
	}

	w.mu.Lock()
	if _, exists := w.catalog[p.id]; exists {
		w.mu.Unlock()
		return errors.WrapInvalid(
			fmt.Errorf("%w: product id %q already exists", errors.ErrDuplicateID, p.id),
			"Warehouse", "AddProduct", "duplicate check")
	}
	w.catalog[p.id] = p
	size := len(w.catalog)
	w.mu.Unlock()

	w.stats.UpdateProducts(int64(size))
	if w.metrics != nil {
		w.metrics.updateProducts(size)
		w.metrics.setStock(p.id, p.Quantity())
	}

	w.checkAndNotify(p)
	return nil
}

// ReceiveShipment increases the quantity of an existing product. The
// structural lock is held only for the lookup; the increase itself runs
// on the product's own mutex, and increase failures propagate unchanged.
func (w *Warehouse) ReceiveShipment(productID string, amount int64) error {
	p, err := w.getExisting("ReceiveShipment", productID)
	if err != nil {
		return err
	}

	if err := p.Increase(amount); err != nil {
		w.stats.Rejection()
		if w.metrics != nil {
			w.metrics.recordRejection()
		}
		return err
	}

	w.stats.Shipment()
	if w.metrics != nil {
		w.metrics.recordShipment()
		w.metrics.setStock(p.id, p.Quantity())
	}

	w.checkAndNotify(p)
	return nil
}

// FulfillOrder decreases the quantity of an existing product. Decrease
// failures (insufficient stock, bad amount) propagate unchanged and leave
// the quantity untouched.
func (w *Warehouse) FulfillOrder(productID string, amount int64) error {
	p, err := w.getExisting("FulfillOrder", productID)
	if err != nil {
		return err
	}

	if err := p.Decrease(amount); err != nil {
		w.stats.Rejection()
		if w.metrics != nil {
			w.metrics.recordRejection()
		}
		return err
	}

	w.stats.Order()
	if w.metrics != nil {
		w.metrics.recordOrder()
		w.metrics.setStock(p.id, p.Quantity())
	}

	w.checkAndNotify(p)
	return nil
}

// PutOrReplace unconditionally upserts a product. This is the bulk-restore
// path used by snapshot import: it bypasses the duplicate-id check and
// does not trigger low-stock notification.
func (w *Warehouse) PutOrReplace(p *Product) error {
	if p == nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: product cannot be nil", errors.ErrInvalidArgument),
			"Warehouse", "PutOrReplace", "product validation")
	}

	w.mu.Lock()
	w.catalog[p.id] = p
	size := len(w.catalog)
	w.mu.Unlock()

	w.stats.UpdateProducts(int64(size))
	if w.metrics != nil {
		w.metrics.updateProducts(size)
		w.metrics.setStock(p.id, p.Quantity())
	}
	return nil
}

// ListSnapshot returns a point-in-time value copy of every product.
// Callers may process the result freely without holding up the catalog
// or reaching its internal references.
func (w *Warehouse) ListSnapshot() []ProductSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snapshots := make([]ProductSnapshot, 0, len(w.catalog))
	for _, p := range w.catalog {
		snapshots = append(snapshots, p.Snapshot())
	}
	return snapshots
}

// Describe renders the inventory sorted by product id ascending, or the
// "(empty)" placeholder when the catalog holds nothing.
func (w *Warehouse) Describe() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if len(w.catalog) == 0 {
		return emptyInventory
	}

	ids := make([]string, 0, len(w.catalog))
	for id := range w.catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Warehouse %s inventory:\n", w.name)
	for _, id := range ids {
		fmt.Fprintf(&sb, " - %s\n", w.catalog[id])
	}
	return sb.String()
}

// getExisting validates the id and resolves it under the shared structural
// lock. The lock is released before the caller touches the product's
// quantity.
func (w *Warehouse) getExisting(method, productID string) (*Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: product id is required", errors.ErrInvalidArgument),
			"Warehouse", method, "id validation")
	}

	w.mu.RLock()
	p, exists := w.catalog[productID]
	w.mu.RUnlock()

	if !exists {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: no such product %q in warehouse %q", errors.ErrNotFound, productID, w.name),
			"Warehouse", method, "product lookup")
	}
	return p, nil
}

// checkAndNotify evaluates the low-stock condition after a quantity change
// and fans out to every registered observer, in registration order. The
// quantity is re-read through the product's own accessor after the
// structural lock has been released: per-product concurrency is preferred
// over a single consistent snapshot-then-notify ordering.
func (w *Warehouse) checkAndNotify(p *Product) {
	qty := p.Quantity()
	if qty > p.threshold {
		return
	}

	w.stats.Alert()
	if w.metrics != nil {
		w.metrics.recordAlert(p.id)
	}

	for _, obs := range w.observers.snapshot() {
		w.invokeObserver(obs, p)
	}
}

// invokeObserver runs one observer behind an isolation boundary. The fault
// of one observer must never abort the fan-out or surface to the caller of
// the triggering operation.
func (w *Warehouse) invokeObserver(obs StockObserver, p *Product) {
	defer func() {
		_ = recover()
	}()
	obs(p, w)
}
