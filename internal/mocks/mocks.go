package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"
)

// MockStore hands out the embedded repository mocks. Unset repositories
// come back as nil interfaces.
type MockStore struct {
	ProductRepo   *MockProductRepository
	OrderRepo     *MockOrderRepository
	UserRepo      *MockUserRepository
	MessageRepo   *MockMessageRepository
	AnalyticsRepo *MockAnalyticsRepository
	IsDemo        bool
}

var _ repository.Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		ProductRepo:   new(MockProductRepository),
		OrderRepo:     new(MockOrderRepository),
		UserRepo:      new(MockUserRepository),
		MessageRepo:   new(MockMessageRepository),
		AnalyticsRepo: new(MockAnalyticsRepository),
	}
}

func (s *MockStore) Products() repository.ProductRepository    { return s.ProductRepo }
func (s *MockStore) Orders() repository.OrderRepository        { return s.OrderRepo }
func (s *MockStore) Users() repository.UserRepository          { return s.UserRepo }
func (s *MockStore) Messages() repository.MessageRepository    { return s.MessageRepo }
func (s *MockStore) Analytics() repository.AnalyticsRepository { return s.AnalyticsRepo }
func (s *MockStore) Demo() bool                                { return s.IsDemo }

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event string, data any) error {
	args := m.Called(ctx, event, data)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *domain.Product) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) HasRole(ctx context.Context, role string) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Dashboard(ctx context.Context, since time.Time) (*domain.Dashboard, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
