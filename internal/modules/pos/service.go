package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/wecare-shop/internal/modules/billing"
	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductStore is the part of the catalog a sale needs.
type ProductStore interface {
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	UpdateStock(ctx context.Context, id int, stock int) error
}

// Service defines the sale workflow.
type Service interface {
	// StartSale opens a sale for a customer.
	StartSale(customer string) (*Sale, error)

	// AddItem validates a purchase against current stock, applies the
	// buy-3-get-1-free promotion, deducts paid and free items from stock
	// and records the line on the sale.
	AddItem(ctx context.Context, sale *Sale, productID, quantity int) (*billing.SaleLine, error)

	// Checkout writes the sale invoice and returns it with its path.
	// A sale without lines returns ErrEmptyTransaction and writes nothing.
	Checkout(ctx context.Context, sale *Sale) (*billing.SaleInvoice, string, error)
}

type service struct {
	store   ProductStore
	invoice billing.Writer
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new sale service.
func NewService(store ProductStore, invoice billing.Writer, logger *zap.Logger) Service {
	return &service{store: store, invoice: invoice, logger: logger, now: time.Now}
}

func (s *service) StartSale(customer string) (*Sale, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, ErrCustomerRequired
	}
	return &Sale{
		ID:        uuid.New(),
		Customer:  customer,
		StartedAt: s.now(),
		Total:     decimal.Zero,
	}, nil
}

func (s *service) AddItem(ctx context.Context, sale *Sale, productID, quantity int) (*billing.SaleLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	p, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > p.Stock {
		return nil, fmt.Errorf("%w: only %d items available in stock", ErrInsufficientStock, p.Stock)
	}

	free := FreeItems(quantity)
	consumed := quantity + free
	if consumed > p.Stock {
		return nil, fmt.Errorf("%w: not enough stock for free items, maximum available: %d", ErrInsufficientStock, p.Stock)
	}

	price := SellingPrice(p.CostPrice)
	line := billing.SaleLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Quantity:  quantity,
		FreeItems: free,
		UnitPrice: price,
		Total:     price.Mul(decimal.NewFromInt(int64(quantity))),
	}

	if err := s.store.UpdateStock(ctx, p.ID, p.Stock-consumed); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	sale.Items = append(sale.Items, line)
	sale.Total = sale.Total.Add(line.Total)

	s.logger.Info("sale_item_added",
		zap.Stringer("sale_id", sale.ID),
		zap.Int("product_id", p.ID),
		zap.Int("quantity", quantity),
		zap.Int("free_items", free),
		zap.String("line_total", line.Total.StringFixed(2)))
	return &line, nil
}

func (s *service) Checkout(ctx context.Context, sale *Sale) (*billing.SaleInvoice, string, error) {
	if len(sale.Items) == 0 {
		return nil, "", ErrEmptyTransaction
	}
	inv := &billing.SaleInvoice{
		ID:       sale.ID,
		Customer: sale.Customer,
		Date:     s.now(),
		Items:    append([]billing.SaleLine(nil), sale.Items...),
		Total:    sale.Total,
	}
	path, err := s.invoice.WriteSale(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("write sale invoice: %w", err)
	}
	return inv, path, nil
}
