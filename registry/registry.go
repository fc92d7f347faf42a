// Package registry provides a central registry of named warehouses with
// cross-warehouse aggregation and reporting.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/c360/inventory/errors"
	"github.com/c360/inventory/warehouse"
)

// Registry holds warehouses by name. It consumes warehouses only through
// their public read operations and never mutates their internals.
type Registry struct {
	mu         sync.RWMutex
	warehouses map[string]*warehouse.Warehouse
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		warehouses: make(map[string]*warehouse.Warehouse),
	}
}

// Add registers a warehouse under its own name. Names are unique:
// registering a second warehouse with the same name fails.
func (r *Registry) Add(w *warehouse.Warehouse) error {
	if w == nil {
		return errors.WrapInvalid(
			fmt.Errorf("%w: warehouse cannot be nil", errors.ErrInvalidArgument),
			"Registry", "Add", "warehouse validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.warehouses[w.Name()]; exists {
		return errors.WrapInvalid(
			fmt.Errorf("%w: warehouse name %q already registered", errors.ErrDuplicateID, w.Name()),
			"Registry", "Add", "duplicate check")
	}

	r.warehouses[w.Name()] = w
	return nil
}

// Get returns the warehouse registered under name.
func (r *Registry) Get(name string) (*warehouse.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, exists := r.warehouses[name]
	if !exists {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: unknown warehouse %q", errors.ErrNotFound, name),
			"Registry", "Get", "warehouse lookup")
	}
	return w, nil
}

// Size returns the number of registered warehouses.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.warehouses)
}

// TotalStockByProduct sums quantities per product id across all registered
// warehouses, based on each warehouse's point-in-time snapshot.
func (r *Registry) TotalStockByProduct() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[string]int64)
	for _, w := range r.warehouses {
		for _, s := range w.ListSnapshot() {
			totals[s.ID] += s.Quantity
		}
	}
	return totals
}

// Report renders each warehouse's inventory followed by the aggregated
// totals sorted by product id. Warehouses appear in name order so the
// report is stable across runs.
func (r *Registry) Report() string {
	r.mu.RLock()
	names := make([]string, 0, len(r.warehouses))
	for name := range r.warehouses {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("=== Central Inventory Report ===\n")
	for _, name := range names {
		sb.WriteString(r.warehouses[name].Describe())
		sb.WriteString("\n")
	}
	r.mu.RUnlock()

	totals := r.TotalStockByProduct()
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sb.WriteString("Aggregated totals:\n")
	for _, id := range ids {
		fmt.Fprintf(&sb, " - %s -> totalQty=%d\n", id, totals[id])
	}
	return sb.String()
}
