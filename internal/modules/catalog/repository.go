package catalog

import "context"

// Repository defines the interface for catalog data storage.
type Repository interface {
	// Load returns every product in stored order.
	Load(ctx context.Context) ([]*Product, error)
	// Save replaces the stored catalog with products.
	Save(ctx context.Context, products []*Product) error
}

// Reader is the read-only view of the catalog.
type Reader interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
}
