package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront-service/internal/domain"
)

const salesWindowMonths = 6

type AnalyticsService struct {
	stores *StoreSelector
	log    *zap.Logger
	now    func() time.Time
}

func NewAnalyticsService(stores *StoreSelector, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{stores: stores, log: logger, now: time.Now}
}

// Dashboard never fails. Aggregation errors produce an all-zero dashboard.
func (s *AnalyticsService) Dashboard(ctx context.Context) *domain.Dashboard {
	since := s.now().UTC().AddDate(0, -salesWindowMonths, 0)

	store := s.stores.Select(ctx, "getDashboard")
	d, err := store.Analytics().Dashboard(ctx, since)
	if err != nil || d == nil {
		s.log.Error("dashboard aggregation failed", zap.Error(err))
		return domain.EmptyDashboard()
	}

	if d.RecentOrders == nil {
		d.RecentOrders = []domain.RecentOrder{}
	}
	if d.SalesByCategory == nil {
		d.SalesByCategory = []domain.CategorySales{}
	}
	if d.MonthlySales == nil {
		d.MonthlySales = []domain.MonthlySales{}
	}
	return d
}
