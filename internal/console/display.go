package console

import (
	"strings"

	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/georgemunganga/wecare-shop/internal/modules/pos"
)

// displayProducts prints the products that are in stock with their
// selling price.
func (c *Console) displayProducts(products []catalog.Product) {
	c.printf("\nAvailable Products:\n")
	c.printf("%-5s %-20s %-15s %-10s %-15s %-15s\n", "ID", "Name", "Brand", "Stock", "Price(Rs)", "Origin")
	c.printf("%s\n", strings.Repeat("-", 80))
	for _, p := range products {
		if p.Stock <= 0 {
			continue
		}
		c.printf("%-5d %-20s %-15s %-10d %-15s %-15s\n",
			p.ID, p.Name, p.Brand, p.Stock, pos.SellingPrice(p.CostPrice).StringFixed(2), p.Origin)
	}
}
