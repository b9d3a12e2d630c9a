package billing

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	saleRuleWidth    = 85
	restockRuleWidth = 80
	dateLayout       = "2006-01-02 15:04:05"
)

// RenderSale lays out a sale invoice as fixed-width text.
func RenderSale(inv *SaleInvoice) string {
	rule := strings.Repeat("-", saleRuleWidth) + "\n"

	var b strings.Builder
	b.WriteString("=== WeCare Skin Care - Sale Invoice ===\n\n")
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Customer: %s\n\n", inv.Customer)

	b.WriteString("Items Purchased:\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%-5s %-20s %-15s %-8s %-8s %-12s %-12s\n",
		"ID", "Product", "Brand", "Qty", "Free", "Price(Rs)", "Total(Rs)")
	b.WriteString(rule)
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%-5d %-20s %-15s %-8d %-8d %-12s %-12s\n",
			it.ProductID, it.Name, it.Brand, it.Quantity, it.FreeItems,
			it.UnitPrice.StringFixed(2), it.Total.StringFixed(2))
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "Total Amount: Rs. %s\n", inv.Total.StringFixed(2))
	b.WriteString("\nThank you for shopping with WeCare!")
	return b.String()
}

// RenderRestock lays out a restock invoice as fixed-width text.
func RenderRestock(inv *RestockInvoice) string {
	rule := strings.Repeat("-", restockRuleWidth) + "\n"

	var b strings.Builder
	b.WriteString("=== WeCare Skin Care - Restock Invoice ===\n\n")
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format(dateLayout))
	fmt.Fprintf(&b, "Supplier: %s\n\n", inv.Supplier)

	b.WriteString("Items Restocked:\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%-5s %-20s %-15s %-8s %-15s %-15s\n",
		"ID", "Product", "Brand", "Qty", "Cost(Rs)", "Total(Rs)")
	b.WriteString(rule)
	for _, it := range inv.Items {
		id := "NEW"
		if it.ProductID != 0 {
			id = strconv.Itoa(it.ProductID)
		}
		fmt.Fprintf(&b, "%-5s %-20s %-15s %-8d %-15s %-15s\n",
			id, it.Name, it.Brand, it.Quantity,
			it.CostPrice.StringFixed(2), it.Total().StringFixed(2))
	}
	b.WriteString(rule)
	fmt.Fprintf(&b, "Total Cost: Rs. %s\n", inv.Total.StringFixed(2))
	b.WriteString("\nThank you for your business!")
	return b.String()
}
