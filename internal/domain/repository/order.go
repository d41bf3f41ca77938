package repository

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
)

// OrderMutation changes a locked order in place and reports whether it must be persisted.
type OrderMutation func(order *model.Order) (bool, error)

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status         model.OrderStatus
	IncludeDeleted bool
	Limit          int
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	Update(ctx context.Context, id string, mutate OrderMutation) (*model.Order, error)
}
