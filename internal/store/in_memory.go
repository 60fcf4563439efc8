package store

import (
	"iter"
	"math"
	"slices"

	"github.com/abgdnv/inventory/internal/errors"
	"github.com/shopspring/decimal"
)

// inMemory implements InventoryStore using a slice.
// It is not safe for concurrent use and must not be modified while a List sequence is being ranged over.
type inMemory struct {
	products []Product
}

// NewInMemoryStore creates a new, empty instance of InventoryStore.
func NewInMemoryStore() InventoryStore {
	return &inMemory{}
}

// Count returns the number of products.
func (s *inMemory) Count() int {
	return len(s.products)
}

// Add creates a new product and appends it.
func (s *inMemory) Add(name string, price decimal.Decimal, stock int) (*Product, error) {
	product, err := NewProduct(name, price, stock)
	if err != nil {
		return nil, err
	}
	s.products = append(s.products, *product)
	return product, nil
}

// List returns a sequence over all products in insertion order.
func (s *inMemory) List() iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range s.products {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Get retrieves a product by its position.
func (s *inMemory) Get(index int) (Product, error) {
	if !s.inRange(index) {
		return Product{}, errors.ErrIndexOutOfRange
	}
	return s.products[index], nil
}

// Sell removes quantity items from stock.
func (s *inMemory) Sell(index int, quantity int) (decimal.Decimal, error) {
	if !s.inRange(index) {
		return decimal.Zero, errors.ErrIndexOutOfRange
	}
	if quantity < 0 {
		return decimal.Zero, errors.ErrNegativeAmount
	}
	p := &s.products[index]
	if quantity > p.Stock {
		return decimal.Zero, errors.ErrInsufficientStock
	}
	p.Stock -= quantity
	return p.Price.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Restock adds amount items to stock. The stock never wraps past math.MaxInt.
func (s *inMemory) Restock(index int, amount int) error {
	if !s.inRange(index) {
		return errors.ErrIndexOutOfRange
	}
	if amount < 0 {
		return errors.ErrNegativeAmount
	}
	p := &s.products[index]
	if amount > math.MaxInt-p.Stock {
		return errors.ErrStockOverflow
	}
	p.Stock += amount
	return nil
}

// Remove deletes a product by its position.
func (s *inMemory) Remove(index int) error {
	if !s.inRange(index) {
		return errors.ErrIndexOutOfRange
	}
	s.products = slices.Delete(s.products, index, index+1)
	return nil
}

func (s *inMemory) inRange(index int) bool {
	return index >= 0 && index < len(s.products)
}
