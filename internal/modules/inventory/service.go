package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/georgemunganga/wecare-shop/internal/modules/billing"
	"github.com/georgemunganga/wecare-shop/internal/modules/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductStore is the part of the catalog a restock needs.
type ProductStore interface {
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	Restock(ctx context.Context, items []catalog.RestockItem) ([]catalog.Product, error)
}

// Service defines the supplier restock workflow.
type Service interface {
	// StartRestock opens a delivery from a supplier.
	StartRestock(supplier string) (*Restock, error)

	// AddExisting records more units of a catalog product. A zero cost
	// keeps the product's current cost price.
	AddExisting(ctx context.Context, restock *Restock, productID, quantity int, cost decimal.Decimal) (*billing.RestockLine, error)

	// AddNew records a product that is not in the catalog yet.
	AddNew(ctx context.Context, restock *Restock, req NewProductRequest) (*billing.RestockLine, error)

	// Complete merges all lines into the catalog in one write and then
	// writes the restock invoice. A restock without lines returns
	// ErrEmptyTransaction and changes nothing.
	Complete(ctx context.Context, restock *Restock) (*billing.RestockInvoice, string, error)
}

type service struct {
	store   ProductStore
	invoice billing.Writer
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new restock service.
func NewService(store ProductStore, invoice billing.Writer, logger *zap.Logger) Service {
	return &service{store: store, invoice: invoice, logger: logger, now: time.Now}
}

func (s *service) StartRestock(supplier string) (*Restock, error) {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return nil, ErrSupplierRequired
	}
	return &Restock{
		ID:        uuid.New(),
		Supplier:  supplier,
		StartedAt: s.now(),
		Total:     decimal.Zero,
	}, nil
}

func (s *service) AddExisting(ctx context.Context, restock *Restock, productID, quantity int, cost decimal.Decimal) (*billing.RestockLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: must not be negative", ErrInvalidCostPrice)
	}
	p, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if pending := restock.pending(p.ID); quantity > math.MaxInt-p.Stock-pending {
		return nil, fmt.Errorf("%w: %s has %d in stock", catalog.ErrStockOverflow, p.Name, p.Stock+pending)
	}
	if cost.IsZero() {
		cost = p.CostPrice
	}
	line := billing.RestockLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Quantity:  quantity,
		CostPrice: cost,
		Origin:    p.Origin,
	}
	s.record(restock, line)
	return &line, nil
}

func (s *service) AddNew(ctx context.Context, restock *Restock, req NewProductRequest) (*billing.RestockLine, error) {
	name := strings.TrimSpace(req.Name)
	brand := strings.TrimSpace(req.Brand)
	origin := strings.TrimSpace(req.Origin)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name", ErrFieldRequired)
	case brand == "":
		return nil, fmt.Errorf("%w: brand", ErrFieldRequired)
	case origin == "":
		return nil, fmt.Errorf("%w: origin", ErrFieldRequired)
	}
	for _, f := range []struct{ field, value string }{{"name", name}, {"brand", brand}, {"origin", origin}} {
		if strings.Contains(f.value, catalog.FieldSeparator) {
			return nil, fmt.Errorf("%w: %s must not contain %q", ErrInvalidField, f.field, catalog.FieldSeparator)
		}
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !req.CostPrice.IsPositive() {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidCostPrice)
	}
	line := billing.RestockLine{
		Name:      name,
		Brand:     brand,
		Quantity:  req.Quantity,
		CostPrice: req.CostPrice,
		Origin:    origin,
	}
	s.record(restock, line)
	return &line, nil
}

func (s *service) record(restock *Restock, line billing.RestockLine) {
	restock.Items = append(restock.Items, line)
	restock.Total = restock.Total.Add(line.Total())
	s.logger.Debug("restock_line_added",
		zap.Stringer("restock_id", restock.ID),
		zap.Int("product_id", line.ProductID),
		zap.String("name", line.Name),
		zap.Int("quantity", line.Quantity))
}

func (s *service) Complete(ctx context.Context, restock *Restock) (*billing.RestockInvoice, string, error) {
	if len(restock.Items) == 0 {
		return nil, "", ErrEmptyTransaction
	}
	items := make([]catalog.RestockItem, len(restock.Items))
	for i, l := range restock.Items {
		items[i] = catalog.RestockItem{
			ID:        l.ProductID,
			Name:      l.Name,
			Brand:     l.Brand,
			Quantity:  l.Quantity,
			CostPrice: l.CostPrice,
			Origin:    l.Origin,
		}
	}
	if _, err := s.store.Restock(ctx, items); err != nil {
		return nil, "", fmt.Errorf("restock catalog: %w", err)
	}

	inv := &billing.RestockInvoice{
		ID:       restock.ID,
		Supplier: restock.Supplier,
		Date:     s.now(),
		Items:    append([]billing.RestockLine(nil), restock.Items...),
		Total:    restock.Total,
	}
	path, err := s.invoice.WriteRestock(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("write restock invoice: %w", err)
	}
	return inv, path, nil
}
