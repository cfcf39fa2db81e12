package repository

import (
	"context"

	"storefront-service/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	HasRole(ctx context.Context, role string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
}
