// Package store provides an interface for inventory storage operations.
package store

import (
	"iter"

	"github.com/shopspring/decimal"
)

// InventoryStore is an ordered collection of products addressed by position.
// Positions are 0-based and shift down by one after every removal, so callers must
// re-query positions after Remove.
type InventoryStore interface {
	// Count returns the number of products currently held.
	Count() int

	// Add validates the attributes and appends a new product.
	// Returns a ValidationError and leaves the store unchanged if any attribute is invalid.
	Add(name string, price decimal.Decimal, stock int) (*Product, error)

	// List enumerates products in insertion order. The sequence is lazy and can be ranged over
	// more than once. Yielded products are copies.
	List() iter.Seq2[int, Product]

	// Get returns a copy of the product at index.
	// Returns ErrIndexOutOfRange if index is invalid.
	Get(index int) (Product, error)

	// Sell decrements the stock of the product at index and returns price * quantity.
	// Returns ErrIndexOutOfRange, ErrNegativeAmount or ErrInsufficientStock.
	Sell(index int, quantity int) (decimal.Decimal, error)

	// Restock increments the stock of the product at index.
	// Returns ErrIndexOutOfRange, ErrNegativeAmount or ErrStockOverflow.
	Restock(index int, amount int) error

	// Remove deletes the product at index, shifting subsequent products down by one.
	// Returns ErrIndexOutOfRange if index is invalid.
	Remove(index int) error
}
