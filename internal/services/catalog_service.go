package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository/demo"
)

type CatalogService struct {
	stores *StoreSelector
	log    *zap.Logger
}

func NewCatalogService(stores *StoreSelector, logger *zap.Logger) *CatalogService {
	return &CatalogService{stores: stores, log: logger}
}

// List returns stored products newest first. An empty or failing store
// yields the built-in catalog instead.
func (s *CatalogService) List(ctx context.Context) []domain.Product {
	store := s.stores.Select(ctx, "listProducts")
	products, err := store.Products().List(ctx)
	if err != nil {
		s.log.Error("list products failed, serving built-in catalog", zap.Error(err))
		return demo.Catalog()
	}
	if len(products) == 0 {
		return demo.Catalog()
	}
	return products
}

// ListByCategory treats "All" like List. Other categories are filtered and
// may come back empty.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if category == domain.CategoryAll {
		return s.List(ctx), nil
	}

	store := s.stores.Select(ctx, "listProductsByCategory")
	products, err := store.Products().ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint64) (*domain.Product, error) {
	store := s.stores.Select(ctx, "getProduct")
	p, err := store.Products().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	if builtin, ok := demo.CatalogProduct(id); ok {
		return &builtin, nil
	}
	return nil, domain.Errorf(domain.ErrNotFound, "Product not found")
}

// Create persists a product, or synthesizes one when the store is down. The
// returned flag is true for synthesized results.
func (s *CatalogService) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, bool, error) {
	if err := validateProduct(in); err != nil {
		return nil, false, err
	}

	p := productFromInput(in)
	if p.Image == "" {
		p.Image = domain.PlaceholderImage
	}

	store := s.stores.Select(ctx, "createProduct")
	if err := store.Products().Create(ctx, p); err != nil {
		return nil, false, err
	}
	return p, store.Demo(), nil
}

func (s *CatalogService) Update(ctx context.Context, id uint64, in domain.ProductInput) (*domain.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	p := productFromInput(in)
	p.ID = id

	store := s.stores.Select(ctx, "updateProduct")
	found, err := store.Products().Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.Errorf(domain.ErrNotFound, "Product not found")
	}
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint64) error {
	store := s.stores.Select(ctx, "deleteProduct")
	found, err := store.Products().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.Errorf(domain.ErrNotFound, "Product not found")
	}
	return nil
}

// Categories is static and never touches the store.
func (s *CatalogService) Categories() []string {
	out := make([]string, len(domain.Categories))
	copy(out, domain.Categories)
	return out
}

func validateProduct(in domain.ProductInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || !in.Price.IsPositive() {
		return domain.Errorf(domain.ErrInvalidInput, "Name, price, and category are required")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return domain.Errorf(domain.ErrInvalidInput, "Rating must be between 0 and 5")
	}
	if in.Reviews < 0 {
		return domain.Errorf(domain.ErrInvalidInput, "Reviews must not be negative")
	}
	return nil
}

func productFromInput(in domain.ProductInput) *domain.Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return &domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price.Round(2),
		Category:    strings.TrimSpace(in.Category),
		Image:       in.Image,
		Description: in.Description,
		Rating:      in.Rating,
		Reviews:     in.Reviews,
		InStock:     inStock,
	}
}
