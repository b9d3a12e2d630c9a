package catalog

import (
	"context"
	"fmt"
)

type snapshotReader struct{ repo Repository }

// NewSnapshotReader returns a Reader that reloads the repository on every
// call, so it always reflects the latest saved catalog.
func NewSnapshotReader(repo Repository) Reader { return &snapshotReader{repo: repo} }

func (r *snapshotReader) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := r.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = *p
	}
	return out, nil
}

func (r *snapshotReader) GetProduct(ctx context.Context, id int) (Product, error) {
	products, err := r.repo.Load(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return *p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}
