package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront-service/internal/domain"
)

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
)

type Health struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Redis    string    `json:"redis,omitempty"`
	Time     time.Time `json:"time"`
}

// SystemService reports dependency health and initialises the schema.
type SystemService struct {
	stores  *StoreSelector
	migrate func(ctx context.Context) error
	ping    func(ctx context.Context) error
	log     *zap.Logger
	now     func() time.Time
}

// NewSystemService takes the schema migration and an optional Redis ping;
// a nil ping leaves redis out of the health report.
func NewSystemService(stores *StoreSelector, migrate, ping func(ctx context.Context) error, logger *zap.Logger) *SystemService {
	return &SystemService{stores: stores, migrate: migrate, ping: ping, log: logger, now: time.Now}
}

func (s *SystemService) Health(ctx context.Context) Health {
	h := Health{Status: "OK", Database: statusDisconnected, Time: s.now().UTC()}
	if s.stores.Available(ctx) {
		h.Database = statusConnected
	}
	if s.ping != nil {
		h.Redis = statusConnected
		if err := s.ping(ctx); err != nil {
			s.log.Warn("redis ping failed", zap.Error(err))
			h.Redis = statusDisconnected
		}
	}
	return h
}

// InitDB creates missing tables and indexes. Running it twice is harmless.
func (s *SystemService) InitDB(ctx context.Context) error {
	if s.migrate == nil || !s.stores.Available(ctx) {
		return domain.Errorf(domain.ErrUnavailable, "Database not available")
	}
	if err := s.migrate(ctx); err != nil {
		s.log.Error("schema initialisation failed", zap.Error(err))
		return err
	}
	s.log.Info("schema initialised")
	return nil
}
