// Package demo is the in-memory fallback used while the database is
// unreachable. Nothing written here is persisted.
package demo

import (
	"context"
	"math/rand/v2"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

type Store struct {
	now func() time.Time
}

var _ repository.Store = (*Store)(nil)

// errNotDurable is returned by every operation that would have to change
// existing rows.
var errNotDurable = domain.Errorf(domain.ErrUnavailable, "Database not available (demo mode)")

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Products() repository.ProductRepository    { return productRepo{s} }
func (s *Store) Orders() repository.OrderRepository        { return orderRepo{s} }
func (s *Store) Users() repository.UserRepository          { return userRepo{} }
func (s *Store) Messages() repository.MessageRepository    { return messageRepo{s} }
func (s *Store) Analytics() repository.AnalyticsRepository { return analyticsRepo{s} }
func (s *Store) Demo() bool                                { return true }

// syntheticID mimics a freshly assigned identifier in [1000, 11000).
func syntheticID() uint64 {
	return 1000 + rand.Uint64N(10000)
}

type productRepo struct{ s *Store }

func (r productRepo) List(context.Context) ([]domain.Product, error) {
	return Catalog(), nil
}

func (r productRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range builtinCatalog {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r productRepo) FindByID(_ context.Context, id uint64) (*domain.Product, error) {
	if p, ok := CatalogProduct(id); ok {
		return &p, nil
	}
	return nil, nil
}

func (r productRepo) Create(_ context.Context, p *domain.Product) error {
	p.ID = syntheticID()
	p.CreatedAt = r.s.now().UTC()
	p.UpdatedAt = p.CreatedAt
	if p.Image == "" {
		p.Image = domain.PlaceholderImage
	}
	return nil
}

func (r productRepo) Update(context.Context, *domain.Product) (bool, error) {
	return false, errNotDurable
}

func (r productRepo) Delete(context.Context, uint64) (bool, error) {
	return false, errNotDurable
}

type userRepo struct{}

func (userRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, errNotDurable
}

func (userRepo) FindByID(context.Context, uint64) (*domain.User, error) {
	return nil, errNotDurable
}

func (userRepo) HasRole(context.Context, string) (bool, error) {
	return false, errNotDurable
}

func (userRepo) Create(context.Context, *domain.User) error {
	return errNotDurable
}

type messageRepo struct{ s *Store }

func (r messageRepo) Create(_ context.Context, m *domain.Message) error {
	m.ID = syntheticID()
	m.CreatedAt = r.s.now().UTC()
	return nil
}

func (r messageRepo) List(context.Context) ([]domain.Message, error) {
	return []domain.Message{}, nil
}
