package sqldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-service/internal/domain"
)

func TestOrderRepo_Create(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	order := newOrder("a@b.com", "30.00", time.Time{},
		newItem(1, "Widget", "Home", "10.00", 3),
		newItem(2, "Gadget", "Electronics", "2.50", 2),
		newItem(3, "Gizmo", domain.UnknownCategory, "1.25", 1),
	)

	require.NoError(t, store.Orders().Create(ctx, order))

	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 3)

	ids := map[uint64]bool{}
	for i, it := range order.Items {
		assert.Equal(t, order.ID, it.OrderID)
		assert.False(t, ids[it.ID], "duplicate id")
		ids[it.ID] = true
		if i > 0 {
			assert.Greater(t, it.ID, order.Items[i-1].ID)
		}
	}
	assert.Equal(t, "Widget", order.Items[0].ProductName)
	assert.Equal(t, "30.00", order.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", order.Items[1].Subtotal.StringFixed(2))
	assert.Equal(t, "Gizmo", order.Items[2].ProductName)
}

func TestOrderRepo_Create_RollsBackOnItemFailure(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			_ = tx.AddError(errors.New("simulated outage"))
		}
	}))

	order := newOrder("a@b.com", "30.00", time.Time{},
		newItem(1, "Widget", "Home", "10.00", 3),
	)
	err := store.Orders().Create(ctx, order)

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorContains(t, err, "simulated outage")

	// the store is healthy again; nothing from the failed attempt is visible
	require.NoError(t, db.Callback().Create().Remove("test:fail_items"))

	var orders, items int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&domain.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	listed, err := store.Orders().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestOrderRepo_List(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	oldest := newOrder("old@b.com", "10.50", base,
		newItem(1, "A", "Home", "10.50", 1),
	)
	middle := newOrder("mid@b.com", "0", base.Add(time.Hour)) // no items
	newest := newOrder("new@b.com", "7.75", base.Add(2*time.Hour),
		newItem(4, "D", "Sports", "2.50", 1),
		newItem(5, "E", "Sports", "5.25", 1),
	)
	for _, o := range []*domain.Order{oldest, middle, newest} {
		require.NoError(t, store.Orders().Create(ctx, o))
	}
	// an item added later to the oldest order sorts after its first item
	late := newItem(9, "Z", "Home", "1.00", 1)
	late.OrderID = oldest.ID
	require.NoError(t, db.Create(&late).Error)

	got, err := store.Orders().List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []uint64{newest.ID, middle.ID, oldest.ID}, []uint64{got[0].ID, got[1].ID, got[2].ID})

	require.Len(t, got[0].Items, 2)
	assert.Less(t, got[0].Items[0].ID, got[0].Items[1].ID)
	assert.Equal(t, "D", got[0].Items[0].ProductName)
	assert.Equal(t, "5.25", got[0].Items[1].ProductPrice.StringFixed(2))

	// no phantom item for an order without lines
	assert.NotNil(t, got[1].Items)
	assert.Empty(t, got[1].Items)

	require.Len(t, got[2].Items, 2)
	assert.Equal(t, "A", got[2].Items[0].ProductName)
	assert.Equal(t, "Z", got[2].Items[1].ProductName)
	assert.Equal(t, "10.50", got[2].Total.StringFixed(2))
	assert.Equal(t, domain.PaymentMethodCard, got[2].PaymentMethod)
}

func TestGroupOrderRows(t *testing.T) {
	itemID := func(v uint64) *uint64 { return &v }
	name := "Widget"

	rows := []orderRow{
		{ID: 2, Status: "pending", ItemID: itemID(5), ProductName: &name},
		{ID: 2, Status: "pending", ItemID: itemID(6)},
		{ID: 1, Status: "shipped"},
	}

	got := groupOrderRows(rows)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	require.Len(t, got[0].Items, 2)
	assert.Equal(t, "Widget", got[0].Items[0].ProductName)
	assert.Equal(t, uint64(6), got[0].Items[1].ID)
	assert.Equal(t, domain.StatusShipped, got[1].Status)
	assert.Empty(t, got[1].Items)

	assert.Empty(t, groupOrderRows(nil))
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	order := newOrder("a@b.com", "3.00", base, newItem(1, "A", "Home", "1.50", 2))
	require.NoError(t, store.Orders().Create(ctx, order))
	// pin the timestamp so the touch is observable
	require.NoError(t, db.Model(&domain.Order{}).Where("id = ?", order.ID).Update("updated_at", base).Error)

	got, err := store.Orders().UpdateStatus(ctx, order.ID, domain.StatusShipped)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusShipped, got.Status)
	assert.True(t, got.UpdatedAt.After(base))
	require.Len(t, got.Items, 1)

	missing, err := store.Orders().UpdateStatus(ctx, order.ID+100, domain.StatusShipped)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
