package warehouse

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/inventory/errors"
)

func mustProduct(t *testing.T, id, name string, quantity, threshold int64) *Product {
	t.Helper()
	p, err := NewProduct(id, name, quantity, threshold)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		prodName  string
		quantity  int64
		threshold int64
		wantError bool
	}{
		{"valid product", "P-1001", "Laptop", 0, 5, false},
		{"empty id", "", "Laptop", 0, 5, true},
		{"blank id", "   ", "Laptop", 0, 5, true},
		{"empty name", "P-1001", "", 0, 5, true},
		{"blank name", "P-1001", "  ", 0, 5, true},
		{"negative quantity", "P-1001", "Laptop", -1, 5, true},
		{"negative threshold", "P-1001", "Laptop", 0, -1, true},
		{"zero threshold", "P-1001", "Laptop", 10, 0, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := NewProduct(test.id, test.prodName, test.quantity, test.threshold)
			if test.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.id, p.ID())
			assert.Equal(t, test.prodName, p.Name())
			assert.Equal(t, test.quantity, p.Quantity())
			assert.Equal(t, test.threshold, p.ReorderThreshold())
		})
	}
}

func TestProduct_IncreaseDecrease(t *testing.T) {
	p := mustProduct(t, "P-1001", "Laptop", 0, 5)

	require.NoError(t, p.Increase(10))
	assert.Equal(t, int64(10), p.Quantity())

	require.NoError(t, p.Decrease(6))
	assert.Equal(t, int64(4), p.Quantity())

	// Quantity equals the signed sum of all applied deltas
	require.NoError(t, p.Increase(3))
	require.NoError(t, p.Decrease(7))
	assert.Equal(t, int64(0), p.Quantity())
}

func TestProduct_IncreaseValidation(t *testing.T) {
	p := mustProduct(t, "P-1001", "Laptop", 5, 5)

	err := p.Increase(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, int64(5), p.Quantity())

	err = p.Increase(-3)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, int64(5), p.Quantity())
}

func TestProduct_IncreaseOverflow(t *testing.T) {
	p := mustProduct(t, "P-1001", "Laptop", math.MaxInt64-1, 5)

	require.NoError(t, p.Increase(1))
	assert.Equal(t, int64(math.MaxInt64), p.Quantity())

	err := p.Increase(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrQuantityOverflow)

	// Failed increase leaves the quantity unchanged
	assert.Equal(t, int64(math.MaxInt64), p.Quantity())
}

func TestProduct_DecreaseInsufficientStock(t *testing.T) {
	p := mustProduct(t, "P-1001", "Laptop", 4, 5)

	err := p.Decrease(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "available=4")
	assert.Contains(t, err.Error(), "requested=5")

	// Failed decrease leaves the quantity unchanged
	assert.Equal(t, int64(4), p.Quantity())

	err = p.Decrease(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, int64(4), p.Quantity())
}

func TestProduct_ConcurrentMutations(t *testing.T) {
	const (
		goroutines = 8
		iterations = 1000
	)

	// Seed with enough stock that no decrease can fail
	p := mustProduct(t, "P-1001", "Laptop", goroutines*iterations, 5)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				assert.NoError(t, p.Increase(2))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				assert.NoError(t, p.Decrease(1))
			}
		}()
	}
	wg.Wait()

	// Final quantity equals initial plus the net signed delta
	expected := int64(goroutines*iterations) + int64(goroutines*iterations*2) - int64(goroutines*iterations)
	assert.Equal(t, expected, p.Quantity())
}

func TestProduct_String(t *testing.T) {
	p := mustProduct(t, "P-1001", "Laptop", 4, 5)
	assert.Equal(t, `Product{id="P-1001", name="Laptop", qty=4, threshold=5}`, p.String())
}
