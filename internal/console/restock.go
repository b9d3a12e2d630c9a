package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/wecare-shop/internal/modules/inventory"
	"github.com/shopspring/decimal"
)

var minNewCost = decimal.RequireFromString("0.01")

func (c *Console) restockProducts(ctx context.Context) error {
	c.printf("\n=== Restock Products ===\n")
	supplier, err := c.promptText("Enter supplier name: ")
	if err != nil {
		return err
	}
	restock, err := c.restock.StartRestock(supplier)
	if err != nil {
		return err
	}
	if err := c.showProducts(ctx); err != nil {
		return err
	}

	for {
		token, err := c.readLine("\nEnter product ID (or 'new' for new product, 'done' to finish): ")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)
		switch {
		case strings.EqualFold(token, "done"):
			return c.completeRestock(ctx, restock)
		case strings.EqualFold(token, "new"):
			err = c.restockNew(ctx, restock)
		default:
			err = c.restockExisting(ctx, restock, token)
		}
		if err != nil && userError(err) {
			c.printf("Error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) restockNew(ctx context.Context, restock *inventory.Restock) error {
	var req inventory.NewProductRequest
	var err error
	if req.Name, err = c.promptText("Enter new product name: "); err != nil {
		return err
	}
	if req.Brand, err = c.promptText("Enter brand name: "); err != nil {
		return err
	}
	if req.Origin, err = c.promptText("Enter country of origin: "); err != nil {
		return err
	}
	if req.Quantity, err = c.promptInt("Enter quantity: ", 1); err != nil {
		return err
	}
	if req.CostPrice, err = c.promptDecimal("Enter cost price per item: ", minNewCost, false); err != nil {
		return err
	}
	_, err = c.restock.AddNew(ctx, restock, req)
	return err
}

func (c *Console) restockExisting(ctx context.Context, restock *inventory.Restock, token string) error {
	p, ok, err := c.lookupProduct(ctx, token)
	if err != nil || !ok {
		return err
	}
	qty, err := c.promptInt(fmt.Sprintf("Enter quantity for %s: ", p.Name), 1)
	if err != nil {
		return err
	}
	cost, err := c.promptDecimal("Enter new cost price per item (or 0 to keep current): ", decimal.Zero, true)
	if err != nil {
		return err
	}
	_, err = c.restock.AddExisting(ctx, restock, p.ID, qty, cost)
	return err
}

func (c *Console) completeRestock(ctx context.Context, restock *inventory.Restock) error {
	_, path, err := c.restock.Complete(ctx, restock)
	if errors.Is(err, inventory.ErrEmptyTransaction) {
		return nil
	}
	if err != nil {
		return err
	}
	c.printf("\nRestock completed! Total cost: Rs. %s\n", restock.Total.StringFixed(2))
	c.printf("Invoice has been generated: %s\n", path)
	return nil
}
