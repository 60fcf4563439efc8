package store

import (
	"errors"
	"reflect"
	"strings"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Product represents a product entity in the store.
type Product struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"gte=0"`
	Stock int             `validate:"gte=0"`
}

var validate = newValidator()

// newValidator creates a validator that sees decimal.Decimal fields as their sign (-1, 0 or 1),
// so gte=0 checks the exact value rather than a rounded float.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// NewProduct validates the attributes and builds a Product.
// Returns a *errors.ValidationError naming every failing field; no Product is returned in that case.
func NewProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	p := Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	}
	if err := validate.Struct(p); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]inverrors.FieldError, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, inverrors.FieldError{Field: fieldErr.Field(), Rule: fieldErr.Tag()})
			}
			return nil, &inverrors.ValidationError{Fields: fields}
		}
		return nil, err
	}
	return &p, nil
}
