// Package console runs the interactive shop terminal: the main menu and
// the sale and restock dialogues.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/georgemunganga/wecare-shop/internal/modules/inventory"
	"github.com/georgemunganga/wecare-shop/internal/modules/pos"
	"go.uber.org/zap"
)

// Console reads commands from in and writes screens to out.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	catalog catalog.Reader
	sales   pos.Service
	restock inventory.Service
	logger  *zap.Logger
}

func New(in io.Reader, out io.Writer, reader catalog.Reader, sales pos.Service, restock inventory.Service, logger *zap.Logger) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		catalog: reader,
		sales:   sales,
		restock: restock,
		logger:  logger,
	}
}

// Run shows the main menu until the user exits or input ends. It returns
// only persistence and I/O errors; everything else is reported on screen.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printf("\n=== WeCare Skin Care Product System ===\n")
		c.printf("1. Display all products\n")
		c.printf("2. Make a sale\n")
		c.printf("3. Restock products\n")
		c.printf("4. Exit\n")
		choice, err := c.readLine("Enter your choice (1-4): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.showProducts(ctx)
		case "2":
			err = c.makeSale(ctx)
		case "3":
			err = c.restockProducts(ctx)
		case "4":
			c.printf("\nThank you for using WeCare Skin Care Product System!\n")
			return nil
		default:
			c.printf("Invalid choice! Please try again.\n")
		}
		if errors.Is(err, io.EOF) {
			c.logger.Info("input_closed")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) showProducts(ctx context.Context) error {
	products, err := c.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	c.displayProducts(products)
	return nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// userError reports whether err is a business rule violation that should
// be shown and re-prompted rather than ending the program.
func userError(err error) bool {
	for _, target := range []error{
		catalog.ErrProductNotFound,
		catalog.ErrStockOverflow,
		pos.ErrInvalidQuantity,
		pos.ErrInsufficientStock,
		inventory.ErrFieldRequired,
		inventory.ErrInvalidField,
		inventory.ErrInvalidQuantity,
		inventory.ErrInvalidCostPrice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
