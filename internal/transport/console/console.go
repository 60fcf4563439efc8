// Package console provides the interactive menu front end of the inventory.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	inverrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/service"
	"github.com/abgdnv/inventory/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const title = "Inventory Management System"

// Options configures the console presentation.
type Options struct {
	// Pause waits for Enter after each completed action.
	Pause    bool
	Locale   language.Tag
	Currency string
}

// Console runs the menu loop against an InventoryService.
// All service calls happen on the goroutine that calls Run.
type Console struct {
	service service.InventoryService
	lines   <-chan string
	out     io.Writer
	format  formatter
	pause   bool
	logger  *slog.Logger
}

// NewConsole creates a Console reading user input from lines and writing to out.
func NewConsole(service service.InventoryService, lines <-chan string, out io.Writer, opts Options, logger *slog.Logger) *Console {
	return &Console{
		service: service,
		lines:   lines,
		out:     out,
		format:  newFormatter(opts.Locale, opts.Currency),
		pause:   opts.Pause,
		logger:  logger.With("component", "console"),
	}
}

// Run shows the main menu until the user exits, input ends or ctx is done.
// Returns nil on exit and end of input, ctx.Err() on cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.println(title)
	c.println(dashes(len(title)))
	c.println()
	for {
		exit, err := c.step(ctx)
		if errors.Is(err, io.EOF) {
			c.logger.InfoContext(ctx, "Input closed")
			return nil
		}
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		c.println()
	}
}

// step shows the menu once and performs the selected action. It reports whether the user chose Exit.
func (c *Console) step(ctx context.Context) (bool, error) {
	option, err := c.selectOption(ctx, mainMenuOptions(c.service.Count(ctx)))
	if err != nil {
		return false, err
	}
	c.println()

	actionCtx := logger.NewAction(ctx)
	c.logger.DebugContext(actionCtx, "Menu option selected", "option", option.label)

	switch option.action {
	case actionView:
		return false, c.view(actionCtx)
	case actionAdd:
		return false, c.add(actionCtx)
	case actionSell:
		return false, c.sell(actionCtx)
	case actionRestock:
		return false, c.restock(actionCtx)
	case actionRemove:
		return false, c.remove(actionCtx)
	default:
		c.println("Exiting the application.")
		return true, nil
	}
}

// selectOption prints the menu until a valid selection is made.
func (c *Console) selectOption(ctx context.Context, options []menuOption) (menuOption, error) {
	for {
		c.println("Main Menu:")
		c.println(dashes(21))
		for i, o := range options {
			c.printf("%d - %s\n", i+1, o.label)
		}
		c.println(dashes(21))
		c.printf("Selection: ")
		line, err := c.readLine(ctx)
		if err != nil {
			return menuOption{}, err
		}
		selection, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && validMenuSelection(options, selection) {
			return options[selection-1], nil
		}
		c.logger.DebugContext(ctx, "Invalid menu selection", "input", line)
		c.println("Invalid option.")
		c.println()
	}
}

func (c *Console) view(ctx context.Context) error {
	c.header("View all products")
	c.printf("%s", c.format.productTable(c.service.List(ctx)))
	c.println()
	return c.finish(ctx, "End of list")
}

func (c *Console) add(ctx context.Context) error {
	c.header("Add a product")
	c.println("Enter product details:")
	name, err := c.prompt(ctx, "Name")
	if err != nil {
		return err
	}
	price, err := c.promptDecimal(ctx, "Price")
	if err != nil {
		return err
	}
	stock, err := c.promptInt(ctx, "Stock level")
	if err != nil {
		return err
	}

	_, err = c.service.Add(ctx, service.ProductCreateDto{Name: name, Price: price, Stock: stock})
	if err != nil {
		var vErr *inverrors.ValidationError
		if errors.As(err, &vErr) {
			c.println("Invalid product attribute(s).")
			for _, f := range vErr.Fields {
				c.printf("  %s: %s\n", f.Field, describeRule(f.Rule))
			}
			return nil
		}
		c.reportUnexpected(ctx, err)
		return nil
	}
	c.println()
	return c.finish(ctx, "Product added")
}

func (c *Console) sell(ctx context.Context) error {
	c.header("Sell a product")
	number, err := c.selectProduct(ctx)
	if err != nil {
		return err
	}
	quantity, err := c.promptInt(ctx, "Quantity")
	if err != nil {
		return err
	}

	sale, err := c.service.Sell(ctx, number, quantity)
	switch {
	case err == nil:
	case errors.Is(err, inverrors.ErrIndexOutOfRange):
		c.println("Invalid product number.")
		return nil
	case errors.Is(err, inverrors.ErrInsufficientStock):
		c.println("Quantity exceeds current stock.")
		return nil
	case errors.Is(err, inverrors.ErrNegativeAmount):
		c.println("Quantity cannot be less than 0.")
		return nil
	default:
		c.reportUnexpected(ctx, err)
		return nil
	}
	c.println()
	c.printf("Total value: %s\n", c.format.price(sale.Total))
	return c.finish(ctx, "Product sold.")
}

func (c *Console) restock(ctx context.Context) error {
	c.header("Restock a product")
	number, err := c.selectProduct(ctx)
	if err != nil {
		return err
	}
	amount, err := c.promptInt(ctx, "Amount")
	if err != nil {
		return err
	}

	_, err = c.service.Restock(ctx, number, amount)
	switch {
	case err == nil:
	case errors.Is(err, inverrors.ErrIndexOutOfRange):
		c.println("Invalid product number.")
		return nil
	case errors.Is(err, inverrors.ErrNegativeAmount):
		c.println("Product amount cannot be less than 0.")
		return nil
	case errors.Is(err, inverrors.ErrStockOverflow):
		c.println("Stock level would exceed the maximum.")
		return nil
	default:
		c.reportUnexpected(ctx, err)
		return nil
	}
	c.println()
	return c.finish(ctx, "Product restocked.")
}

func (c *Console) remove(ctx context.Context) error {
	c.header("Remove a product")
	number, err := c.selectProduct(ctx)
	if err != nil {
		return err
	}

	_, err = c.service.Remove(ctx, number)
	switch {
	case err == nil:
	case errors.Is(err, inverrors.ErrIndexOutOfRange):
		c.println("Invalid product number.")
		return nil
	default:
		c.reportUnexpected(ctx, err)
		return nil
	}
	c.println()
	return c.finish(ctx, "Product removed.")
}

// selectProduct shows the picker table and returns the 1-based number entered by the user.
// The number is not range-checked here; the service rejects unknown numbers.
func (c *Console) selectProduct(ctx context.Context) (int, error) {
	c.printf("%s", c.format.pickerTable(c.service.List(ctx)))
	c.println()
	return c.promptInt(ctx, "Enter product number")
}

func (c *Console) header(text string) {
	c.println(text)
	c.println(dashes(len(text)))
}

// finish prints the closing message of an action and, when pausing is on, waits for Enter.
func (c *Console) finish(ctx context.Context, msg string) error {
	if !c.pause {
		c.println(msg)
		return nil
	}
	c.printf("%s", msg)
	_, err := c.readLine(ctx)
	return err
}

func (c *Console) reportUnexpected(ctx context.Context, err error) {
	c.logger.ErrorContext(ctx, "Unexpected inventory error", "error", err)
	c.printf("Operation failed: %v\n", err)
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.printf("%s: ", label)
	return c.readLine(ctx)
}

// promptInt re-prompts until the input parses as an integer.
func (c *Console) promptInt(ctx context.Context, label string) (int, error) {
	for {
		line, err := c.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		c.println("Invalid input")
	}
}

// promptDecimal re-prompts until the input parses as a decimal number.
func (c *Console) promptDecimal(ctx context.Context, label string) (decimal.Decimal, error) {
	for {
		line, err := c.prompt(ctx, label)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.TrimSpace(line))
		if err == nil {
			return d, nil
		}
		c.println("Invalid input")
	}
}

// readLine returns the next input line, io.EOF when input has ended, or ctx.Err().
func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// describeRule turns a validation rule into a message for the user.
func describeRule(rule string) string {
	switch rule {
	case "required":
		return "must not be empty"
	case "gte":
		return "cannot be less than 0"
	default:
		return "failed on rule: " + rule
	}
}
