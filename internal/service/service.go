// Package service provides the implementation of inventory business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/shopspring/decimal"
)

// InventoryService defines the methods for managing the inventory.
// Products are addressed by their 1-based display number, as shown by List.
type InventoryService interface {
	// Count returns the number of products in the inventory.
	Count(ctx context.Context) int

	// List returns all products in display order.
	// Returns an empty slice if no products exist.
	List(ctx context.Context) []ProductDto

	// Add validates and appends a new product.
	// Returns ErrValidation if any attribute is invalid.
	Add(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Sell takes quantity items of a product out of stock and reports the sale value.
	// Returns ErrIndexOutOfRange, ErrNegativeAmount or ErrInsufficientStock.
	Sell(ctx context.Context, number int, quantity int) (*SaleDto, error)

	// Restock adds amount items to the stock of a product.
	// Returns ErrIndexOutOfRange, ErrNegativeAmount or ErrStockOverflow.
	Restock(ctx context.Context, number int, amount int) (*ProductDto, error)

	// Remove deletes a product. Display numbers of the following products shift down by one.
	// Returns ErrIndexOutOfRange if no product has the given number.
	Remove(ctx context.Context, number int) (*ProductDto, error)
}

// Service implements InventoryService on top of a store.InventoryStore.
type Service struct {
	repository store.InventoryStore
	logger     *slog.Logger
}

// NewService creates a new instance of InventoryService with the provided repository.
func NewService(repo store.InventoryStore, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		logger:     logger.With("component", "service"),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// ProductDto represents a product together with its display number.
type ProductDto struct {
	Number int
	Name   string
	Price  decimal.Decimal
	Stock  int
}

// SaleDto describes a completed sale.
type SaleDto struct {
	Product  ProductDto
	Quantity int
	Total    decimal.Decimal
}

// Count returns the number of products.
func (s *Service) Count(_ context.Context) int {
	return s.repository.Count()
}

// List returns every product as a ProductDto.
func (s *Service) List(ctx context.Context) []ProductDto {
	productDTOs := make([]ProductDto, 0, s.repository.Count())
	for i, item := range s.repository.List() {
		productDTOs = append(productDTOs, toDto(i, item))
	}
	s.logger.DebugContext(ctx, "Listed products", "count", len(productDTOs))
	return productDTOs
}

// Add creates a new product and returns it as a ProductDto.
func (s *Service) Add(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	p, err := s.repository.Add(product.Name, product.Price, product.Stock)
	if err != nil {
		s.logger.WarnContext(ctx, "Product rejected", "name", product.Name, "price", product.Price.String(), "stock", product.Stock, "error", err)
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	dto := toDto(s.repository.Count()-1, *p)
	s.logger.DebugContext(ctx, "Product added", "number", dto.Number, "name", dto.Name)
	return &dto, nil
}

// Sell sells quantity items of the product with the given number.
func (s *Service) Sell(ctx context.Context, number int, quantity int) (*SaleDto, error) {
	index := number - 1
	total, err := s.repository.Sell(index, quantity)
	if err != nil {
		s.logRejected(ctx, "Sale rejected", number, "quantity", quantity, err)
		return nil, fmt.Errorf("failed to sell product %d: %w", number, err)
	}
	product, err := s.repository.Get(index)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", number, err)
	}
	s.logger.DebugContext(ctx, "Product sold", "number", number, "quantity", quantity, "total", total.String(), "stock", product.Stock)
	return &SaleDto{
		Product:  toDto(index, product),
		Quantity: quantity,
		Total:    total,
	}, nil
}

// Restock adds amount items to the product with the given number.
func (s *Service) Restock(ctx context.Context, number int, amount int) (*ProductDto, error) {
	index := number - 1
	if err := s.repository.Restock(index, amount); err != nil {
		s.logRejected(ctx, "Restock rejected", number, "amount", amount, err)
		return nil, fmt.Errorf("failed to restock product %d: %w", number, err)
	}
	product, err := s.repository.Get(index)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", number, err)
	}
	s.logger.DebugContext(ctx, "Product restocked", "number", number, "amount", amount, "stock", product.Stock)
	dto := toDto(index, product)
	return &dto, nil
}

// Remove deletes the product with the given number.
func (s *Service) Remove(ctx context.Context, number int) (*ProductDto, error) {
	index := number - 1
	product, err := s.repository.Get(index)
	if err == nil {
		err = s.repository.Remove(index)
	}
	if err != nil {
		s.logRejected(ctx, "Removal rejected", number, "", 0, err)
		return nil, fmt.Errorf("failed to remove product %d: %w", number, err)
	}
	s.logger.DebugContext(ctx, "Product removed", "number", number, "name", product.Name)
	dto := toDto(index, product)
	return &dto, nil
}

// logRejected logs caller-input failures at warn level and anything unexpected at error level.
func (s *Service) logRejected(ctx context.Context, msg string, number int, key string, value int, err error) {
	args := []any{"number", number, "error", err}
	if key != "" {
		args = append(args, key, value)
	}
	if errors.Is(err, inverrors.ErrIndexOutOfRange) ||
		errors.Is(err, inverrors.ErrNegativeAmount) ||
		errors.Is(err, inverrors.ErrStockOverflow) ||
		errors.Is(err, inverrors.ErrInsufficientStock) {
		s.logger.WarnContext(ctx, msg, args...)
		return
	}
	s.logger.ErrorContext(ctx, msg, args...)
}

// toDto converts a store.Product at a 0-based index to a ProductDto.
func toDto(index int, product store.Product) ProductDto {
	return ProductDto{
		Number: index + 1,
		Name:   product.Name,
		Price:  product.Price,
		Stock:  product.Stock,
	}
}
