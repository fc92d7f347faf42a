package warehouse

import (
	"sync"
	"sync/atomic"
)

// StockObserver is invoked after a quantity-changing operation leaves a
// product at or below its reorder threshold. Observers receive the affected
// product and the owning warehouse, run outside the warehouse's structural
// lock, and may perform I/O. A panicking observer is contained: it never
// blocks delivery to later observers and never fails the triggering
// operation.
type StockObserver func(p *Product, w *Warehouse)

// observerList is an append-only, copy-on-write observer collection.
// Notification fan-out iterates a stable snapshot while concurrent
// registrations build a fresh slice, so readers are never locked out.
type observerList struct {
	mu   sync.Mutex   // serializes appends
	list atomic.Value // holds []StockObserver
}

// append adds an observer to the end of the list, preserving
// registration order.
func (l *observerList) append(obs StockObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, _ := l.list.Load().([]StockObserver)
	next := make([]StockObserver, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = obs
	l.list.Store(next)
}

// snapshot returns the current observer slice. The slice is immutable
// once stored and safe to iterate without holding any lock.
func (l *observerList) snapshot() []StockObserver {
	cur, _ := l.list.Load().([]StockObserver)
	return cur
}

// len reports the number of registered observers.
func (l *observerList) len() int {
	return len(l.snapshot())
}
