package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines all database operations for the product catalog
type Repository interface {

	// List returns the full catalog ordered by category, then display order
	List(ctx context.Context) ([]Product, error)

	GetByID(ctx context.Context, id string) (*Product, error)

	Create(ctx context.Context, p *Product) error

	// Update rewrites every mutable field. A category change keeps the
	// product's existing display order.
	Update(ctx context.Context, p *Product) error

	Delete(ctx context.Context, id string) error

	// MaxDisplayOrder returns the highest display order currently in a
	// category, or -1 when the category has no products.
	MaxDisplayOrder(ctx context.Context, category string) (int, error)

	// CreateBatch inserts all products atomically (all or nothing)
	CreateBatch(ctx context.Context, products []Product) error
}
