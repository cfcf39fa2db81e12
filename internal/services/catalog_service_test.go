package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository/demo"
)

func newCatalogService(env *testEnv) *CatalogService {
	return NewCatalogService(env.selector, zap.NewNop())
}

func validProduct() domain.ProductInput {
	return domain.ProductInput{Name: "Lamp", Price: dec("19.99"), Category: "Home", Rating: 4.5, Reviews: 3}
}

func TestCatalogService_List(t *testing.T) {
	builtin := demo.Catalog()

	tests := []struct {
		name      string
		available bool
		setup     func(*testEnv)
		want      []domain.Product
	}{
		{
			name:      "live rows",
			available: true,
			setup: func(env *testEnv) {
				env.live.ProductRepo.On("List", mock.Anything).Return([]domain.Product{{ID: 50, Name: "Lamp"}}, nil)
			},
			want: []domain.Product{{ID: 50, Name: "Lamp"}},
		},
		{
			name:      "live but empty falls back",
			available: true,
			setup: func(env *testEnv) {
				env.live.ProductRepo.On("List", mock.Anything).Return([]domain.Product{}, nil)
			},
			want: builtin,
		},
		{
			name:      "live error falls back",
			available: true,
			setup: func(env *testEnv) {
				env.live.ProductRepo.On("List", mock.Anything).Return(nil, errors.New("timeout"))
			},
			want: builtin,
		},
		{
			name:      "unavailable",
			available: false,
			setup:     func(*testEnv) {},
			want:      builtin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.available)
			tt.setup(env)

			got := newCatalogService(env).List(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_List_BuiltinHasTwelve(t *testing.T) {
	env := newTestEnv(t, false)
	assert.Len(t, newCatalogService(env).List(context.Background()), 12)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	t.Run("All behaves like List", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("List", mock.Anything).Return([]domain.Product{}, nil)

		got, err := newCatalogService(env).ListByCategory(context.Background(), "All")
		require.NoError(t, err)
		assert.Len(t, got, 12)
		env.live.ProductRepo.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
	})

	t.Run("live filter has no fallback", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("ListByCategory", mock.Anything, "Sports").Return(nil, nil)

		got, err := newCatalogService(env).ListByCategory(context.Background(), "Sports")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("demo filters built-in catalog", func(t *testing.T) {
		env := newTestEnv(t, false)

		got, err := newCatalogService(env).ListByCategory(context.Background(), "Electronics")
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, p := range got {
			assert.Equal(t, "Electronics", p.Category)
		}
	})
}

func TestCatalogService_Get(t *testing.T) {
	t.Run("live row", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("FindByID", mock.Anything, uint64(50)).Return(&domain.Product{ID: 50}, nil)

		p, err := newCatalogService(env).Get(context.Background(), 50)
		require.NoError(t, err)
		assert.Equal(t, uint64(50), p.ID)
	})

	t.Run("only in built-in catalog", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("FindByID", mock.Anything, uint64(3)).Return(nil, nil)

		p, err := newCatalogService(env).Get(context.Background(), 3)
		require.NoError(t, err)
		want, _ := demo.CatalogProduct(3)
		assert.Equal(t, want, *p)
	})

	t.Run("absent from both", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("FindByID", mock.Anything, uint64(999)).Return(nil, nil)

		_, err := newCatalogService(env).Get(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "Product not found", err.Error())
	})

	t.Run("demo", func(t *testing.T) {
		env := newTestEnv(t, false)

		p, err := newCatalogService(env).Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), p.ID)

		_, err = newCatalogService(env).Get(context.Background(), 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("FindByID", mock.Anything, uint64(1)).Return(nil, domain.ErrPersistence)

		_, err := newCatalogService(env).Get(context.Background(), 1)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func TestCatalogService_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		bad := []func(*domain.ProductInput){
			func(in *domain.ProductInput) { in.Name = "" },
			func(in *domain.ProductInput) { in.Category = " " },
			func(in *domain.ProductInput) { in.Price = dec("0") },
			func(in *domain.ProductInput) { in.Rating = 5.5 },
			func(in *domain.ProductInput) { in.Reviews = -1 },
		}
		for _, mutate := range bad {
			env := newTestEnv(t, true)
			in := validProduct()
			mutate(&in)

			_, _, err := newCatalogService(env).Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			env.live.ProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("live", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Lamp" && p.InStock && p.Image == domain.PlaceholderImage
		})).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = 77
		})

		p, isDemo, err := newCatalogService(env).Create(context.Background(), validProduct())
		require.NoError(t, err)
		assert.False(t, isDemo)
		assert.Equal(t, uint64(77), p.ID)
	})

	t.Run("explicit out of stock", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		in := validProduct()
		no := false
		in.InStock = &no

		p, _, err := newCatalogService(env).Create(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, p.InStock)
	})

	t.Run("demo synthesizes", func(t *testing.T) {
		env := newTestEnv(t, false)

		p, isDemo, err := newCatalogService(env).Create(context.Background(), validProduct())
		require.NoError(t, err)
		assert.True(t, isDemo)
		assert.GreaterOrEqual(t, p.ID, uint64(1000))
		assert.Less(t, p.ID, uint64(11000))
		assert.Equal(t, domain.PlaceholderImage, p.Image)
	})
}

func TestCatalogService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("Update", mock.Anything, mock.Anything).Return(false, nil)

		_, err := newCatalogService(env).Update(context.Background(), 404, validProduct())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("updated", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.live.ProductRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ID == 8 && p.Name == "Lamp"
		})).Return(true, nil)

		p, err := newCatalogService(env).Update(context.Background(), 8, validProduct())
		require.NoError(t, err)
		assert.Equal(t, uint64(8), p.ID)
	})

	t.Run("demo refuses", func(t *testing.T) {
		env := newTestEnv(t, false)

		_, err := newCatalogService(env).Update(context.Background(), 1, validProduct())
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	env := newTestEnv(t, true)
	env.live.ProductRepo.On("Delete", mock.Anything, uint64(1)).Return(true, nil)
	env.live.ProductRepo.On("Delete", mock.Anything, uint64(2)).Return(false, nil)

	svc := newCatalogService(env)
	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), domain.ErrNotFound)

	demoEnv := newTestEnv(t, false)
	assert.ErrorIs(t, newCatalogService(demoEnv).Delete(context.Background(), 1), domain.ErrUnavailable)
}

func TestCatalogService_Categories(t *testing.T) {
	env := newTestEnv(t, false)
	svc := newCatalogService(env)

	cats := svc.Categories()
	assert.Equal(t, domain.Categories, cats)

	cats[0] = "mutated"
	assert.Equal(t, domain.CategoryAll, svc.Categories()[0])
	env.prober.AssertNotCalled(t, "Probe", mock.Anything)
}
