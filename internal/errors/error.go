// Package errors provides custom error types for inventory operations.
package errors

import (
	"errors"
	"strings"
)

var ErrValidation = errors.New("invalid product attributes")
var ErrIndexOutOfRange = errors.New("product index out of range")
var ErrInsufficientStock = errors.New("quantity exceeds current stock")
var ErrNegativeAmount = errors.New("amount cannot be less than 0")
var ErrStockOverflow = errors.New("stock level exceeds the maximum")

// FieldError describes a single product field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError is returned when a product cannot be constructed from the given attributes.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " failed on rule: " + f.Rule
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
