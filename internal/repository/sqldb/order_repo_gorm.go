package sqldb

import (
	"context"
	"errors"
	"time"

	"storefront-service/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepo struct {
	conn
}

// Create inserts the order header and one row per line item inside a single
// transaction, then re-reads the items so the caller sees what was stored.
// Any failure rolls back the whole order.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	db, cancel := r.session(ctx)
	defer cancel()

	tx := db.Begin()
	if tx.Error != nil {
		return r.persistence("begin", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	header := *order
	header.Items = nil
	if err := tx.Omit(clause.Associations).Create(&header).Error; err != nil {
		tx.Rollback()
		return r.persistence("insert order", err)
	}

	for _, in := range order.Items {
		item := in
		item.ID = 0
		item.OrderID = header.ID
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return r.persistence("insert order item", err)
		}
	}

	var stored []domain.OrderItem
	if err := tx.Where("order_id = ?", header.ID).Order("id ASC").Find(&stored).Error; err != nil {
		tx.Rollback()
		return r.persistence("read order items", err)
	}

	if err := tx.Commit().Error; err != nil {
		return r.persistence("commit", err)
	}

	*order = header
	order.Items = stored
	r.log.Info("order saved", zap.Uint64("order_id", order.ID), zap.Int("items", len(stored)))
	return nil
}

// orderRow is one row of the orders LEFT JOIN order_items result. Item
// columns are NULL for orders without items.
type orderRow struct {
	ID              uint64
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Total           decimal.Decimal
	Status          string
	PaymentStatus   string
	PaymentMethod   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ItemID          *uint64
	ProductID       *uint64
	ProductName     *string
	ProductCategory *string
	ProductPrice    decimal.NullDecimal
	Quantity        *int
	Subtotal        decimal.NullDecimal
}

func (r *orderRepo) List(ctx context.Context) ([]domain.Order, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rows []orderRow
	err := db.Table("orders AS o").
		Select(`o.id, o.customer_name, o.customer_email, o.customer_address,
			o.total, o.status, o.payment_status, o.payment_method, o.created_at, o.updated_at,
			oi.id AS item_id, oi.product_id, oi.product_name, oi.product_category,
			oi.product_price, oi.quantity, oi.subtotal`).
		Joins("LEFT JOIN order_items AS oi ON oi.order_id = o.id").
		Order("o.created_at DESC, o.id DESC, oi.id ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("list orders failed", zap.Error(err))
		return nil, err
	}
	return groupOrderRows(rows), nil
}

// groupOrderRows folds the flat join back into orders, keeping the row order
// for both orders and items.
func groupOrderRows(rows []orderRow) []domain.Order {
	orders := make([]domain.Order, 0)
	index := make(map[uint64]int)

	for _, row := range rows {
		pos, ok := index[row.ID]
		if !ok {
			o := domain.Order{
				ID:              row.ID,
				CustomerName:    row.CustomerName,
				CustomerEmail:   row.CustomerEmail,
				CustomerAddress: row.CustomerAddress,
				Total:           row.Total,
				Status:          domain.OrderStatus(row.Status),
				PaymentStatus:   domain.PaymentStatus(row.PaymentStatus),
				CreatedAt:       row.CreatedAt,
				UpdatedAt:       row.UpdatedAt,
				Items:           []domain.OrderItem{},
			}
			if row.PaymentMethod != nil {
				o.PaymentMethod = *row.PaymentMethod
			}
			orders = append(orders, o)
			pos = len(orders) - 1
			index[row.ID] = pos
		}

		if row.ItemID == nil {
			continue
		}
		item := domain.OrderItem{
			ID:           *row.ItemID,
			OrderID:      row.ID,
			ProductPrice: row.ProductPrice.Decimal,
			Subtotal:     row.Subtotal.Decimal,
		}
		if row.ProductID != nil {
			item.ProductID = *row.ProductID
		}
		if row.ProductName != nil {
			item.ProductName = *row.ProductName
		}
		if row.ProductCategory != nil {
			item.ProductCategory = *row.ProductCategory
		}
		if row.Quantity != nil {
			item.Quantity = *row.Quantity
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}
	return orders
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, r.persistence("update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var o domain.Order
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
