package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecentOrder struct {
	ID           uint64          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CategorySales struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type MonthlySales struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}

type Dashboard struct {
	TotalOrders     int64           `json:"totalOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalProducts   int64           `json:"totalProducts"`
	TotalCustomers  int64           `json:"totalCustomers"`
	RecentOrders    []RecentOrder   `json:"recentOrders"`
	SalesByCategory []CategorySales `json:"salesByCategory"`
	MonthlySales    []MonthlySales  `json:"monthlySales"`
}

// EmptyDashboard is served when aggregation fails.
func EmptyDashboard() *Dashboard {
	return &Dashboard{
		TotalRevenue:    decimal.Zero,
		RecentOrders:    []RecentOrder{},
		SalesByCategory: []CategorySales{},
		MonthlySales:    []MonthlySales{},
	}
}
