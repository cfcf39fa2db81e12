// Package sqldb is the live, gorm-backed implementation of repository.Store.
// It works against postgres, mysql and sqlite dialects.
package sqldb

import (
	"context"
	"fmt"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Store struct {
	products  *productRepo
	orders    *orderRepo
	users     *userRepo
	messages  *messageRepo
	analytics *analyticsRepo
}

var _ repository.Store = (*Store)(nil)

// NewStore wires every repository to db. Each call is bounded by timeout;
// a zero timeout leaves the caller's context untouched.
func NewStore(db *gorm.DB, timeout time.Duration, logger *zap.Logger) *Store {
	c := conn{db: db, timeout: timeout, log: logger}
	return &Store{
		products:  &productRepo{c},
		orders:    &orderRepo{c},
		users:     &userRepo{c},
		messages:  &messageRepo{c},
		analytics: &analyticsRepo{c},
	}
}

func (s *Store) Products() repository.ProductRepository    { return s.products }
func (s *Store) Orders() repository.OrderRepository        { return s.orders }
func (s *Store) Users() repository.UserRepository          { return s.users }
func (s *Store) Messages() repository.MessageRepository    { return s.messages }
func (s *Store) Analytics() repository.AnalyticsRepository { return s.analytics }
func (s *Store) Demo() bool                                { return false }

type conn struct {
	db      *gorm.DB
	timeout time.Duration
	log     *zap.Logger
}

func (c conn) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	if c.timeout <= 0 {
		return c.db.WithContext(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	return c.db.WithContext(ctx), cancel
}

// persistence logs the failed step and wraps err so callers can match
// domain.ErrPersistence while keeping the driver error in the chain.
func (c conn) persistence(step string, err error) error {
	c.log.Error("database write failed", zap.String("step", step), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, step, err)
}
