package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository defines all database operations for orders
type Repository interface {
	Create(ctx context.Context, o *Order) error

	GetByID(ctx context.Context, id string) (*Order, error)

	// ListByUser returns a user's orders, newest first
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	UpdateStatus(ctx context.Context, id string, status string) error
}
