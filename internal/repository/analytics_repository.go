package repository

import (
	"context"
	"time"

	"storefront-service/internal/domain"
)

type AnalyticsRepository interface {
	// Dashboard aggregates over the whole store; monthly sales only count
	// orders created at or after since.
	Dashboard(ctx context.Context, since time.Time) (*domain.Dashboard, error)
}
