package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development without Postgres.
type InMemoryRepository struct {
	products map[string]*Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		products: make(map[string]*Product),
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].DisplayOrder < out[j].DisplayOrder
	})

	return out, nil
}

func (r *InMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	copied := *p
	return &copied, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *Product) error {
	existing, ok := r.products[p.ID]
	if !ok {
		return ErrProductNotFound
	}

	copied := *p
	copied.DisplayOrder = existing.DisplayOrder
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	r.products[p.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *InMemoryRepository) MaxDisplayOrder(
	ctx context.Context,
	category string,
) (int, error) {

	max := -1
	for _, p := range r.products {
		if p.Category == category && p.DisplayOrder > max {
			max = p.DisplayOrder
		}
	}
	return max, nil
}

func (r *InMemoryRepository) CreateBatch(
	ctx context.Context,
	products []Product,
) error {

	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}
