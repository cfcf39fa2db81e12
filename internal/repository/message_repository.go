package repository

import (
	"context"

	"storefront-service/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
}
