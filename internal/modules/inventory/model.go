package inventory

import (
	"errors"
	"time"

	"github.com/georgemunganga/wecare-shop/internal/modules/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSupplierRequired = errors.New("supplier name is required")
	ErrFieldRequired    = errors.New("field is required")
	ErrInvalidField     = errors.New("invalid field")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidCostPrice = errors.New("invalid cost price")
	ErrEmptyTransaction = errors.New("no items in transaction")
)

// Restock is an open supplier delivery. Nothing reaches the catalog until
// the restock is completed.
type Restock struct {
	ID        uuid.UUID             `json:"id"`
	Supplier  string                `json:"supplier"`
	StartedAt time.Time             `json:"started_at"`
	Items     []billing.RestockLine `json:"items"`
	Total     decimal.Decimal       `json:"total"`
}

// pending sums the quantities already recorded for a catalog product.
func (r *Restock) pending(productID int) int {
	n := 0
	for _, l := range r.Items {
		if l.ProductID == productID {
			n += l.Quantity
		}
	}
	return n
}

// NewProductRequest holds the data for a product the catalog does not
// carry yet.
type NewProductRequest struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Origin    string          `json:"origin"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
}
