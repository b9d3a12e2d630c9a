package pos

import (
	"errors"
	"time"

	"github.com/georgemunganga/wecare-shop/internal/modules/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerRequired  = errors.New("customer name is required")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyTransaction  = errors.New("no items in transaction")
)

// Sale is an open sale at the counter. Lines are committed to stock as
// they are added; the invoice is produced at checkout.
type Sale struct {
	ID        uuid.UUID          `json:"id"`
	Customer  string             `json:"customer"`
	StartedAt time.Time          `json:"started_at"`
	Items     []billing.SaleLine `json:"items"`
	Total     decimal.Decimal    `json:"total"`
}
