package warehouse

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks warehouse operation counters. Collection is always on;
// Prometheus export is layered on top via WithMetrics.
type Statistics struct {
	// Atomic counters for thread-safe updates
	shipments  int64
	orders     int64
	rejections int64
	alerts     int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	products    int64
	maxProducts int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Shipment records a successful shipment receipt.
func (s *Statistics) Shipment() {
	atomic.AddInt64(&s.shipments, 1)
}

// Order records a successfully fulfilled order.
func (s *Statistics) Order() {
	atomic.AddInt64(&s.orders, 1)
}

// Rejection records a stock mutation that failed validation or stock checks.
func (s *Statistics) Rejection() {
	atomic.AddInt64(&s.rejections, 1)
}

// Alert records a low-stock notification fan-out.
func (s *Statistics) Alert() {
	atomic.AddInt64(&s.alerts, 1)
}

// UpdateProducts updates the current product count.
func (s *Statistics) UpdateProducts(count int64) {
	s.mu.Lock()
	s.products = count
	if count > s.maxProducts {
		s.maxProducts = count
	}
	s.mu.Unlock()
}

// Shipments returns the total number of successful shipment receipts.
func (s *Statistics) Shipments() int64 {
	return atomic.LoadInt64(&s.shipments)
}

// Orders returns the total number of fulfilled orders.
func (s *Statistics) Orders() int64 {
	return atomic.LoadInt64(&s.orders)
}

// Rejections returns the total number of rejected stock mutations.
func (s *Statistics) Rejections() int64 {
	return atomic.LoadInt64(&s.rejections)
}

// Alerts returns the total number of low-stock fan-outs.
func (s *Statistics) Alerts() int64 {
	return atomic.LoadInt64(&s.alerts)
}

// Products returns the current product count.
func (s *Statistics) Products() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// MaxProducts returns the largest product count the warehouse has held.
func (s *Statistics) MaxProducts() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxProducts
}

// Uptime returns how long the warehouse has been tracking statistics.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.shipments, 0)
	atomic.StoreInt64(&s.orders, 0)
	atomic.StoreInt64(&s.rejections, 0)
	atomic.StoreInt64(&s.alerts, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.products = 0
	s.maxProducts = 0
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Shipments   int64         `json:"shipments"`
	Orders      int64         `json:"orders"`
	Rejections  int64         `json:"rejections"`
	Alerts      int64         `json:"alerts"`
	Products    int64         `json:"products"`
	MaxProducts int64         `json:"max_products"`
	Uptime      time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Shipments:   s.Shipments(),
		Orders:      s.Orders(),
		Rejections:  s.Rejections(),
		Alerts:      s.Alerts(),
		Products:    s.Products(),
		MaxProducts: s.MaxProducts(),
		Uptime:      s.Uptime(),
	}
}
