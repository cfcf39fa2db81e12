// Package database opens the gorm connection pool, creates the schema and
// answers availability probes.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"storefront-service/internal/config"
	"storefront-service/internal/domain"
)

// Open builds the pool without dialing. The first real round trip happens in
// the prober, so a down database leaves the service running in demo mode.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", cfg.Driver)
	}
	return OpenDialector(dialector, cfg)
}

// OpenDialector applies the shared gorm settings and pool limits to any
// dialector.
func OpenDialector(dialector gorm.Dialector, cfg config.DBConfig) (*gorm.DB, error) {
	level := gormlogger.Silent
	if cfg.LogQueries {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               gormlogger.Default.LogMode(level),
		NamingStrategy:       schema.NamingStrategy{SingularTable: false},
		TranslateError:       true,
		DisableAutomaticPing: true,
		NowFunc:              func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	sqlDB.SetConnMaxIdleTime(time.Minute)

	return db, nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates every table and index if absent. It is safe to run on
// every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Message{},
	)
	if err != nil {
		return fmt.Errorf("%w: migrate: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Prober issues SELECT 1 against the pool.
type Prober struct {
	db      *gorm.DB
	timeout time.Duration
	log     *zap.Logger
}

func NewProber(db *gorm.DB, timeout time.Duration, logger *zap.Logger) *Prober {
	return &Prober{db: db, timeout: timeout, log: logger}
}

// Probe reports whether the database answered. It never returns an error and
// never panics; every failure reads as unavailable.
func (p *Prober) Probe(ctx context.Context) (ok bool) {
	if p == nil || p.db == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("availability probe panicked", zap.Any("panic", r))
			ok = false
		}
	}()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var one int
	if err := p.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		p.log.Debug("availability probe failed", zap.Error(err))
		return false
	}
	return one == 1
}
