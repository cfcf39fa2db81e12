package demo

import (
	"context"
	"time"

	"storefront-service/internal/domain"

	"github.com/shopspring/decimal"
)

type analyticsRepo struct{ s *Store }

func (r analyticsRepo) Dashboard(context.Context, time.Time) (*domain.Dashboard, error) {
	return SampleDashboard(r.s.now()), nil
}

func SampleDashboard(now time.Time) *domain.Dashboard {
	now = now.UTC()
	d := decimal.RequireFromString
	return &domain.Dashboard{
		TotalOrders:    156,
		TotalRevenue:   d("24567.89"),
		TotalProducts:  int64(len(builtinCatalog)),
		TotalCustomers: 89,
		RecentOrders: []domain.RecentOrder{
			{ID: 1001, CustomerName: "John Doe", Total: d("129.99"), Status: domain.StatusPending, CreatedAt: now},
			{ID: 1002, CustomerName: "Jane Smith", Total: d("79.99"), Status: domain.StatusProcessing, CreatedAt: now},
			{ID: 1003, CustomerName: "Bob Wilson", Total: d("249.99"), Status: domain.StatusShipped, CreatedAt: now},
		},
		SalesByCategory: []domain.CategorySales{
			{Category: "Electronics", Total: d("12500")},
			{Category: "Clothing", Total: d("4500")},
			{Category: "Accessories", Total: d("3200")},
			{Category: "Sports", Total: d("2800")},
			{Category: "Home", Total: d("1567.89")},
		},
		MonthlySales: []domain.MonthlySales{
			{Month: "Jan", Sales: d("3200")},
			{Month: "Feb", Sales: d("4100")},
			{Month: "Mar", Sales: d("3800")},
			{Month: "Apr", Sales: d("5200")},
			{Month: "May", Sales: d("4800")},
			{Month: "Jun", Sales: d("5467.89")},
		},
	}
}
