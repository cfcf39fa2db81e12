package repository

import (
	"context"

	"storefront-service/internal/domain"
)

type OrderRepository interface {
	// Create persists the header and its items atomically and fills in the
	// generated ids. On return order.Items holds the stored rows.
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus returns nil, nil when no order has the given id.
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error)
}
