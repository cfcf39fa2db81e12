package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	BrokerRabbitMQ = "rabbitmq"
	BrokerKafka    = "kafka"
)

type Config struct {
	Port   string `envconfig:"PORT" default:"5000"`
	Env    string `envconfig:"APP_ENV" default:"dev"`
	Log    LogConfig
	DB     DBConfig
	Auth   AuthConfig
	Redis  RedisConfig
	Events EventsConfig

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	File       string `envconfig:"LOG_FILE" default:""`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

type DBConfig struct {
	Driver           string        `envconfig:"DB_DRIVER" default:"postgres"`
	URL              string        `envconfig:"DATABASE_URL" default:""`
	User             string        `envconfig:"DB_USER" default:"postgres"`
	Password         string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Host             string        `envconfig:"DB_HOST" default:"localhost"`
	Port             string        `envconfig:"DB_PORT" default:""`
	Name             string        `envconfig:"DB_NAME" default:"ecommerce"`
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"5s"`
	ProbeTimeout     time.Duration `envconfig:"DB_PROBE_TIMEOUT" default:"2s"`
	MaxOpenConns     int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns     int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime  time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	LogQueries       bool          `envconfig:"DB_LOG_QUERIES" default:"false"`
}

type AuthConfig struct {
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"your-super-secret-jwt-key-change-in-production"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	DemoEnabled bool          `envconfig:"DEMO_AUTH_ENABLED" default:"false"`
	SeedSecret  string        `envconfig:"SEED_SECRET" default:"dev-seed-key"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:""`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	LoginRateLimit  int           `envconfig:"LOGIN_RATE_LIMIT" default:"10"`
	LoginRateWindow time.Duration `envconfig:"LOGIN_RATE_WINDOW" default:"1m"`
}

type EventsConfig struct {
	Broker           string `envconfig:"EVENT_BROKER" default:""`
	RabbitMQURL      string `envconfig:"RABBITMQ_URL" default:""`
	RabbitMQExchange string `envconfig:"RABBITMQ_EXCHANGE" default:"storefront.exchange"`
	KafkaBrokers     string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaTopic       string `envconfig:"KAFKA_TOPIC" default:"storefront-events"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.Events.Broker {
	case "", BrokerRabbitMQ, BrokerKafka:
	default:
		return fmt.Errorf("config: unsupported EVENT_BROKER %q", c.Events.Broker)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the
// individual DB_* settings in the format the selected driver expects.
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	port := d.Port
	switch d.Driver {
	case DriverMySQL:
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, port, d.Name)
	default:
		if port == "" {
			port = "5432"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     d.Host + ":" + port,
			Path:     "/" + d.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}
}
