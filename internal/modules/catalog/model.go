package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// FieldSeparator joins the fields of one catalog line. Names, brands and
// origins cannot contain it.
const FieldSeparator = ", "

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrMalformedLine   = errors.New("malformed catalog line")
	ErrStockOverflow   = errors.New("stock would exceed the largest storable quantity")
)

// Product is one entry of the shop catalog.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Stock     int             `json:"stock"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Origin    string          `json:"origin"`
}

// RestockItem is one supplier delivery line. A zero ID marks a product
// that is not in the catalog yet and needs an identifier assigned.
type RestockItem struct {
	ID        int             `json:"id,omitempty"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Origin    string          `json:"origin"`
}

// IsNew reports whether the item introduces a new product.
func (i RestockItem) IsNew() bool { return i.ID == 0 }
