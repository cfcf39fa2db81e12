package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-service/internal/config"
	"storefront-service/internal/domain"
	"storefront-service/internal/infra/database"
)

// newTestStore returns a store over a private in-memory SQLite database with
// the full schema applied.
func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := database.OpenDialector(
		sqlite.Open(":memory:?_pragma=foreign_keys(1)"),
		config.DBConfig{MaxOpenConns: 1, MaxIdleConns: 1},
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(context.Background(), db))
	return NewStore(db, 5*time.Second, zap.NewNop()), db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newOrder(email string, total string, createdAt time.Time, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		CustomerName:    "Customer " + email,
		CustomerEmail:   email,
		CustomerAddress: "1 Rd",
		Total:           dec(total),
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentCompleted,
		PaymentMethod:   domain.PaymentMethodCard,
		CreatedAt:       createdAt,
		Items:           items,
	}
}

func newItem(productID uint64, name, category, price string, qty int) domain.OrderItem {
	p := dec(price)
	return domain.OrderItem{
		ProductID:       productID,
		ProductName:     name,
		ProductCategory: category,
		ProductPrice:    p,
		Quantity:        qty,
		Subtotal:        domain.LineSubtotal(p, qty),
	}
}
