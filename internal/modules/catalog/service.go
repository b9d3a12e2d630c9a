package catalog

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Service defines the product store: the authoritative in-memory catalog
// kept in sync with its repository after every mutation.
type Service interface {
	Reader

	// UpdateStock sets a product's stock and persists the catalog.
	// An unknown id is ignored; callers validate existence first.
	UpdateStock(ctx context.Context, id int, stock int) error

	// Restock merges a supplier delivery into the catalog and persists once.
	// It returns the affected products in item order. A batch that would
	// overflow a product's stock fails with ErrStockOverflow and changes
	// nothing.
	Restock(ctx context.Context, items []RestockItem) ([]Product, error)
}

type service struct {
	repo     Repository
	logger   *zap.Logger
	products []*Product
}

// NewService loads the catalog from repo and returns the store over it.
func NewService(ctx context.Context, repo Repository, logger *zap.Logger) (Service, error) {
	products, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog_loaded", zap.Int("products", len(products)))
	return &service{repo: repo, logger: logger, products: products}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = *p
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (Product, error) {
	if p := s.find(id); p != nil {
		return *p, nil
	}
	return Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

func (s *service) UpdateStock(ctx context.Context, id int, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: product %d", ErrNegativeStock, id)
	}
	p := s.find(id)
	if p == nil {
		s.logger.Warn("stock_update_unknown_product", zap.Int("product_id", id))
		return nil
	}
	prev := p.Stock
	p.Stock = stock
	if err := s.repo.Save(ctx, s.products); err != nil {
		return err
	}
	s.logger.Info("stock_updated",
		zap.Int("product_id", id),
		zap.Int("from", prev),
		zap.Int("to", stock))
	return nil
}

func (s *service) Restock(ctx context.Context, items []RestockItem) ([]Product, error) {
	if err := s.checkRestock(items); err != nil {
		return nil, err
	}
	affected := make([]Product, 0, len(items))
	added := 0
	for _, item := range items {
		if p := s.find(item.ID); !item.IsNew() && p != nil {
			p.Stock += item.Quantity
			p.CostPrice = item.CostPrice
			p.Brand = item.Brand
			p.Origin = item.Origin
			affected = append(affected, *p)
			continue
		}
		p := &Product{
			ID:        NextID(s.products),
			Name:      item.Name,
			Brand:     item.Brand,
			Stock:     item.Quantity,
			CostPrice: item.CostPrice,
			Origin:    item.Origin,
		}
		s.products = append(s.products, p)
		affected = append(affected, *p)
		added++
	}
	if err := s.repo.Save(ctx, s.products); err != nil {
		return nil, err
	}
	s.logger.Info("catalog_restocked",
		zap.Int("lines", len(items)),
		zap.Int("added", added),
		zap.Int("products", len(s.products)))
	return affected, nil
}

// checkRestock refuses a batch that would push any product's stock past
// math.MaxInt. Lines for the same product are summed.
func (s *service) checkRestock(items []RestockItem) error {
	projected := make(map[int]int)
	for _, item := range items {
		if item.Quantity < 0 {
			return fmt.Errorf("%w: restock quantity %d", ErrNegativeStock, item.Quantity)
		}
		p := s.find(item.ID)
		if item.IsNew() || p == nil {
			continue
		}
		current, ok := projected[p.ID]
		if !ok {
			current = p.Stock
		}
		if item.Quantity > math.MaxInt-current {
			return fmt.Errorf("%w: product %d has %d, adding %d", ErrStockOverflow, p.ID, current, item.Quantity)
		}
		projected[p.ID] = current + item.Quantity
	}
	return nil
}

func (s *service) find(id int) *Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NextID returns one more than the largest identifier in products.
func NextID(products []*Product) int {
	highest := 0
	for _, p := range products {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}
