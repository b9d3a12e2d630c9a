package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/georgemunganga/wecare-shop/internal/modules/pos"
)

func (c *Console) makeSale(ctx context.Context) error {
	c.printf("\n=== Make a Sale ===\n")
	customer, err := c.promptText("Enter customer name: ")
	if err != nil {
		return err
	}
	sale, err := c.sales.StartSale(customer)
	if err != nil {
		return err
	}
	if err := c.showProducts(ctx); err != nil {
		return err
	}

	for {
		token, err := c.readLine("\nEnter product ID (or 'done' to finish): ")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)
		if strings.EqualFold(token, "done") {
			break
		}
		p, ok, err := c.lookupProduct(ctx, token)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		qty, err := c.promptInt(fmt.Sprintf("Enter quantity for %s: ", p.Name), 1)
		if err != nil {
			return err
		}
		if _, err := c.sales.AddItem(ctx, sale, p.ID, qty); err != nil {
			if userError(err) {
				c.printf("Error: %v\n", err)
				continue
			}
			return err
		}
	}

	_, path, err := c.sales.Checkout(ctx, sale)
	if errors.Is(err, pos.ErrEmptyTransaction) {
		return nil
	}
	if err != nil {
		return err
	}
	c.printf("\nSale completed! Total amount: Rs. %s\n", sale.Total.StringFixed(2))
	c.printf("Invoice has been generated: %s\n", path)
	return nil
}

// lookupProduct resolves a typed product identifier. Unusable input is
// reported and yields ok == false.
func (c *Console) lookupProduct(ctx context.Context, token string) (catalog.Product, bool, error) {
	if token == "" {
		c.printf("Error: Product ID cannot be empty\n")
		return catalog.Product{}, false, nil
	}
	id, err := strconv.Atoi(token)
	if err != nil {
		c.printf("Error: Please enter a valid number\n")
		return catalog.Product{}, false, nil
	}
	p, err := c.catalog.GetProduct(ctx, id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.printf("Error: Product ID not found\n")
		return catalog.Product{}, false, nil
	}
	if err != nil {
		return catalog.Product{}, false, err
	}
	return p, true, nil
}
