package sqldb

import (
	"context"
	"fmt"
	"time"

	"storefront-service/internal/domain"

	"github.com/shopspring/decimal"
)

type analyticsRepo struct {
	conn
}

func (r *analyticsRepo) Dashboard(ctx context.Context, since time.Time) (*domain.Dashboard, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	d := domain.EmptyDashboard()

	var totals struct {
		Count   int64
		Revenue decimal.Decimal
	}
	if err := db.Model(&domain.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("order totals: %w", err)
	}
	d.TotalOrders = totals.Count
	d.TotalRevenue = totals.Revenue

	if err := db.Model(&domain.Product{}).Count(&d.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("product count: %w", err)
	}

	if err := db.Model(&domain.Order{}).Distinct("customer_email").Count(&d.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("customer count: %w", err)
	}

	if err := db.Model(&domain.Order{}).
		Select("id, customer_name, total, status, created_at").
		Order("created_at DESC, id DESC").
		Limit(5).
		Scan(&d.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	if err := db.Model(&domain.OrderItem{}).
		Select("COALESCE(product_category, ?) AS category, COALESCE(SUM(subtotal), 0) AS total", domain.UnknownCategory).
		Group("category").
		Order("category").
		Scan(&d.SalesByCategory).Error; err != nil {
		return nil, fmt.Errorf("sales by category: %w", err)
	}

	var recent []struct {
		CreatedAt time.Time
		Total     decimal.Decimal
	}
	if err := db.Model(&domain.Order{}).
		Select("created_at, total").
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Scan(&recent).Error; err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	for _, o := range recent {
		d.MonthlySales = addMonthly(d.MonthlySales, o.CreatedAt, o.Total)
	}

	return d, nil
}

// addMonthly accumulates into calendar-month buckets. Input must be sorted by
// time so buckets come out in chronological order.
func addMonthly(buckets []domain.MonthlySales, at time.Time, amount decimal.Decimal) []domain.MonthlySales {
	label := at.Format("Jan")
	if n := len(buckets); n > 0 && buckets[n-1].Month == label {
		buckets[n-1].Sales = buckets[n-1].Sales.Add(amount)
		return buckets
	}
	return append(buckets, domain.MonthlySales{Month: label, Sales: amount})
}
