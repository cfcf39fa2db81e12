package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront-service/internal/auth"
	"storefront-service/internal/config"
	handler "storefront-service/internal/controllers/http"
	"storefront-service/internal/infra/database"
	"storefront-service/internal/infra/kafka"
	"storefront-service/internal/infra/metrics"
	"storefront-service/internal/infra/rabbitmq"
	"storefront-service/internal/infra/ratelimit"
	"storefront-service/internal/logger"
	"storefront-service/internal/repository"
	"storefront-service/internal/repository/demo"
	"storefront-service/internal/repository/sqldb"
	"storefront-service/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(cfg.Log)
	defer lg.Sync()

	if err := run(cfg, lg); err != nil {
		lg.Error("server exited with error", zap.Error(err))
		lg.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var (
		live    repository.Store
		prober  services.Prober
		migrate func(context.Context) error
	)
	db, err := database.Open(cfg.DB)
	if err != nil {
		lg.Warn("database unusable, serving demo data only", zap.Error(err))
	} else {
		defer database.Close(db)

		p := database.NewProber(db, cfg.DB.ProbeTimeout, lg)
		live = sqldb.NewStore(db, cfg.DB.StatementTimeout, lg)
		prober = p
		migrate = func(ctx context.Context) error { return database.Migrate(ctx, db) }

		if p.Probe(ctx) {
			if err := migrate(ctx); err != nil {
				lg.Error("schema initialisation failed", zap.Error(err))
			} else {
				lg.Info("database connected, schema ready", zap.String("driver", cfg.DB.Driver))
			}
		} else {
			lg.Warn("database unreachable at startup, skipping schema initialisation")
		}
	}
	stores := services.NewStoreSelector(live, demo.NewStore(), prober, m, lg)

	var (
		limiter ratelimit.Limiter
		ping    func(context.Context) error
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           0,
			PoolSize:     20,
			MinIdleConns: 2,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer rdb.Close()

		limiter = ratelimit.NewRedisLimiter(rdb, cfg.Redis.LoginRateLimit, cfg.Redis.LoginRateWindow)
		ping = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		lg.Info("REDIS_ADDR not set, credential endpoints are not throttled")
	}

	pub, closePub := newPublisher(cfg.Events, lg)
	events := services.NewEventDispatcher(pub, m, lg)
	defer func() {
		events.Wait()
		if err := closePub(); err != nil {
			lg.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if cfg.Auth.DemoEnabled {
		lg.Warn("demo credentials are enabled while the database is unavailable")
	}

	var routeMetrics *metrics.Metrics
	if cfg.MetricsEnabled {
		routeMetrics = m
	}
	h := handler.NewHandler(handler.Services{
		Catalog:   services.NewCatalogService(stores, lg),
		Orders:    services.NewOrderService(stores, events, m, lg),
		Analytics: services.NewAnalyticsService(stores, lg),
		Auth:      services.NewAuthService(stores, tokens, cfg.Auth.DemoEnabled, cfg.Auth.SeedSecret, lg),
		Messages:  services.NewMessageService(stores, events, lg),
		System:    services.NewSystemService(stores, migrate, ping, lg),
	}, limiter, routeMetrics, lg)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("starting storefront service", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newPublisher connects the configured broker. Events are best-effort, so a
// broker that cannot be reached at startup downgrades to discarding them.
func newPublisher(cfg config.EventsConfig, lg *zap.Logger) (services.EventPublisher, func() error) {
	noop := func() error { return nil }

	switch cfg.Broker {
	case config.BrokerRabbitMQ:
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, lg)
		if err != nil {
			lg.Error("rabbitmq unavailable, events will be dropped", zap.Error(err))
			return services.NopPublisher{}, noop
		}
		return p, p.Close
	case config.BrokerKafka:
		p, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, lg)
		if err != nil {
			lg.Error("kafka unavailable, events will be dropped", zap.Error(err))
			return services.NopPublisher{}, noop
		}
		return p, p.Close
	default:
		lg.Info("EVENT_BROKER not set, events are discarded")
		return services.NopPublisher{}, noop
	}
}
