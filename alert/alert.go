// Package alert provides ready-made low-stock observers for warehouses.
package alert

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/inventory/warehouse"
)

// Log returns an observer that emits a structured warning for every
// low-stock event. A nil logger falls back to slog.Default().
func Log(logger *slog.Logger) warehouse.StockObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return func(p *warehouse.Product, w *warehouse.Warehouse) {
		logger.Warn("Low stock",
			"warehouse", w.Name(),
			"product_id", p.ID(),
			"product_name", p.Name(),
			"quantity", p.Quantity(),
			"threshold", p.ReorderThreshold())
	}
}

// Journal returns an observer that appends one timestamped line per
// low-stock event to out, each tagged with a unique event id. Writes are
// serialized so concurrent alerts never interleave within a line; write
// failures are dropped, matching the observer contract that alerting
// never disturbs the triggering operation.
func Journal(out io.Writer) warehouse.StockObserver {
	var mu sync.Mutex
	return func(p *warehouse.Product, w *warehouse.Warehouse) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprintf(out, "%s %s warehouse=%s product=%s name=%q qty=%d threshold=%d\n",
			time.Now().UTC().Format(time.RFC3339),
			uuid.NewString(),
			w.Name(), p.ID(), p.Name(), p.Quantity(), p.ReorderThreshold())
	}
}
