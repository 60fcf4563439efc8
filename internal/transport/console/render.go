package console

import (
	"fmt"
	"strings"

	"github.com/abgdnv/inventory/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	numberWidth = 5
	nameWidth   = 20
	valueWidth  = 10
)

// formatter renders prices and stock levels for a locale.
type formatter struct {
	printer  *message.Printer
	currency string
}

func newFormatter(tag language.Tag, currency string) formatter {
	return formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// price formats a monetary value with the currency symbol and two fraction digits.
// The value is rounded to cents in decimal first; only the rounded amount goes through float64
// for locale grouping, so amounts above 2^53 cents lose precision on display (never in the store).
func (f formatter) price(d decimal.Decimal) string {
	cents := d.Round(2)
	return f.currency + f.printer.Sprintf("%v", number.Decimal(cents.InexactFloat64(), number.Scale(2)))
}

// stock formats a stock level with digit grouping and no fraction.
func (f formatter) stock(n int) string {
	return f.printer.Sprintf("%v", number.Decimal(n))
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}

// productTable renders the full view: number, name, price and stock.
func (f formatter) productTable(products []service.ProductDto) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s %-*s %*s %*s\n", numberWidth, "N", nameWidth, "Name", valueWidth, "Price", valueWidth, "Stock"))
	b.WriteString(dashes(numberWidth) + " " + dashes(nameWidth) + " " + dashes(valueWidth) + " " + dashes(valueWidth) + "\n")
	for _, p := range products {
		b.WriteString(fmt.Sprintf("%-*d %-*s %*s %*s\n",
			numberWidth, p.Number,
			nameWidth, p.Name,
			valueWidth, f.price(p.Price),
			valueWidth, f.stock(p.Stock)))
	}
	return b.String()
}

// pickerTable renders the product selection list: number, name and stock.
func (f formatter) pickerTable(products []service.ProductDto) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s %-*s %*s\n", numberWidth, "N", nameWidth, "Name", valueWidth, "Stock"))
	b.WriteString(dashes(numberWidth) + " " + dashes(nameWidth) + " " + dashes(valueWidth) + "\n")
	for _, p := range products {
		b.WriteString(fmt.Sprintf("%-*d %-*s %*s\n",
			numberWidth, p.Number,
			nameWidth, p.Name,
			valueWidth, f.stock(p.Stock)))
	}
	return b.String()
}
