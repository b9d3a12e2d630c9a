package pos

import "github.com/shopspring/decimal"

// MarkupPercent is added on top of the cost price to get the selling price.
const MarkupPercent = 200

// BuyForFree is how many paid items earn one free item.
const BuyForFree = 3

var markupFactor = decimal.NewFromInt(100 + MarkupPercent).Shift(-2)

// SellingPrice returns cost × (1 + MarkupPercent/100).
func SellingPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(markupFactor)
}

// FreeItems returns the promotional items given with quantity paid items.
func FreeItems(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	return quantity / BuyForFree
}
