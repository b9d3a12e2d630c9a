package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two invoice documents the shop produces.
type Kind string

const (
	KindSale    Kind = "sale"
	KindRestock Kind = "restock"
)

// ── Sale ──────────────────────────────────────────────────────────────────────

// SaleLine is one product sold in a sale.
type SaleLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	FreeItems int             `json:"free_items"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleInvoice is the customer-facing record of a completed sale.
type SaleInvoice struct {
	ID       uuid.UUID       `json:"id"`
	Customer string          `json:"customer"`
	Date     time.Time       `json:"date"`
	Items    []SaleLine      `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

// ── Restock ───────────────────────────────────────────────────────────────────

// RestockLine is one product line delivered by a supplier. ProductID is
// zero for a product that was new at the time of the delivery.
type RestockLine struct {
	ProductID int             `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Origin    string          `json:"origin"`
}

// Total is the line cost, quantity × cost price.
func (l RestockLine) Total() decimal.Decimal {
	return l.CostPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// RestockInvoice is the record of a completed supplier delivery.
type RestockInvoice struct {
	ID       uuid.UUID       `json:"id"`
	Supplier string          `json:"supplier"`
	Date     time.Time       `json:"date"`
	Items    []RestockLine   `json:"items"`
	Total    decimal.Decimal `json:"total"`
}
