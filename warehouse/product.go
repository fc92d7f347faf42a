package warehouse

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/c360/inventory/errors"
)

// Product is a single stock-keeping unit. Identity, display name, and
// reorder threshold are fixed at construction; only the quantity mutates.
// The quantity is guarded by the product's own mutex so that stock
// movements on one product never serialize behind another product or
// behind the owning warehouse's structural lock.
type Product struct {
	id        string
	name      string
	threshold int64

	mu       sync.Mutex
	quantity int64
}

// NewProduct creates a product with a validated initial state.
// The id and name must be non-blank; quantity and threshold must be
// non-negative.
func NewProduct(id, name string, quantity, threshold int64) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: product id is required", errors.ErrInvalidArgument),
			"Product", "NewProduct", "id validation")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: product name is required", errors.ErrInvalidArgument),
			"Product", "NewProduct", "name validation")
	}
	if quantity < 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: initial quantity %d cannot be negative", errors.ErrInvalidArgument, quantity),
			"Product", "NewProduct", "quantity validation")
	}
	if threshold < 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: reorder threshold %d cannot be negative", errors.ErrInvalidArgument, threshold),
			"Product", "NewProduct", "threshold validation")
	}

	return &Product{
		id:        id,
		name:      name,
		threshold: threshold,
		quantity:  quantity,
	}, nil
}

// ID returns the immutable product identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the immutable display name.
func (p *Product) Name() string {
	return p.name
}

// ReorderThreshold returns the immutable low-stock threshold.
func (p *Product) ReorderThreshold() int64 {
	return p.threshold
}

// Quantity returns the current quantity. The read is atomic with respect
// to concurrent Increase/Decrease calls and never touches the warehouse's
// structural lock.
func (p *Product) Quantity() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quantity
}

// Increase atomically adds amount to the quantity. The amount must be
// positive, and the result must stay within the int64 range; on failure
// the quantity is left unchanged.
func (p *Product) Increase(amount int64) error {
	if amount <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: increase amount must be positive, got %d", errors.ErrInvalidArgument, amount),
			"Product", "Increase", "amount validation")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.quantity > math.MaxInt64-amount {
		return errors.WrapInvalid(
			fmt.Errorf("%w: quantity %d plus %d exceeds the representable range",
				errors.ErrQuantityOverflow, p.quantity, amount),
			"Product", "Increase", "overflow check")
	}

	p.quantity += amount
	return nil
}

// Decrease atomically subtracts amount from the quantity. The amount must
// be positive and must not exceed the current quantity; on failure the
// quantity is left unchanged.
func (p *Product) Decrease(amount int64) error {
	if amount <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: decrease amount must be positive, got %d", errors.ErrInvalidArgument, amount),
			"Product", "Decrease", "amount validation")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if amount > p.quantity {
		return errors.WrapInvalid(
			fmt.Errorf("%w: available=%d, requested=%d", errors.ErrInsufficientStock, p.quantity, amount),
			"Product", "Decrease", "stock check")
	}

	p.quantity -= amount
	return nil
}

// Snapshot returns a point-in-time value copy of the product's state.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:               p.id,
		Name:             p.name,
		Quantity:         p.Quantity(),
		ReorderThreshold: p.threshold,
	}
}

// String renders the product for inventory listings.
func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%q, name=%q, qty=%d, threshold=%d}",
		p.id, p.name, p.Quantity(), p.threshold)
}
