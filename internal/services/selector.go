package services

import (
	"context"

	"go.uber.org/zap"

	"storefront-service/internal/infra/metrics"
	"storefront-service/internal/repository"
)

// Prober reports whether the live store answers right now.
type Prober interface {
	Probe(ctx context.Context) bool
}

// StoreSelector picks the live or demo store for one operation. The probe
// result is never cached, so every call pays one round trip.
type StoreSelector struct {
	live    repository.Store
	demo    repository.Store
	prober  Prober
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewStoreSelector accepts a nil live store, in which case every operation
// is served by demo.
func NewStoreSelector(live, demo repository.Store, prober Prober, m *metrics.Metrics, logger *zap.Logger) *StoreSelector {
	return &StoreSelector{live: live, demo: demo, prober: prober, metrics: m, log: logger}
}

func (s *StoreSelector) Select(ctx context.Context, operation string) repository.Store {
	if s.live != nil && s.prober != nil && s.prober.Probe(ctx) {
		return s.live
	}
	s.log.Warn("store unavailable, serving demo data", zap.String("operation", operation))
	s.metrics.RecordFallback(operation)
	return s.demo
}

// Available runs a bare probe for health reporting.
func (s *StoreSelector) Available(ctx context.Context) bool {
	return s.live != nil && s.prober != nil && s.prober.Probe(ctx)
}
