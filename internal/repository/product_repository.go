package repository

import (
	"context"

	"storefront-service/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// FindByID returns nil, nil when the product does not exist.
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	// Update replaces every editable column. Returns false when nothing matched.
	Update(ctx context.Context, p *domain.Product) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}
