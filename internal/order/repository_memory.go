package order

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	orders map[string]*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*Order),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt

	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *InMemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*Order, error) {

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}

	copied := *o
	return &copied, nil
}

func (r *InMemoryRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Order, error) {

	var orders []Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func (r *InMemoryRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status string,
) error {

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}

	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}
