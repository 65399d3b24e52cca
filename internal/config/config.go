package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Драйверы хранилища корзин
const (
	CartDriverMemory   = "memory"
	CartDriverPostgres = "postgres"
	CartDriverRedis    = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Database    DatabaseConfig    `toml:"database"`
	Redis       RedisConfig       `toml:"redis"`
	Cart        CartConfig        `toml:"cart"`
	Checkout    CheckoutConfig    `toml:"checkout"`
	Aggregation AggregationConfig `toml:"aggregation"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`

	BookingService  ServiceConfig `toml:"booking_service"`
	UserService     ServiceConfig `toml:"user_service"`
	StaffService    ServiceConfig `toml:"staff_service"`
	SalonService    ServiceConfig `toml:"salon_service"`
	OfferingService ServiceConfig `toml:"offering_service"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int    `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int    `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int    `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int    `toml:"shutdown_timeout" validate:"min=1"`
	Timezone        string `toml:"timezone" validate:"required"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type CartConfig struct {
	Driver        string `toml:"driver" validate:"oneof=memory postgres redis"`
	PurgeSchedule string `toml:"purge_schedule"`
}

type CheckoutConfig struct {
	Retention      int     `toml:"retention"` // минуты хранения завершенных попыток
	PurgeSchedule  string  `toml:"purge_schedule"`
	PaymentDelayMS int     `toml:"payment_delay_ms" validate:"min=0"`
	SuccessRate    float64 `toml:"success_rate" validate:"min=0,max=1"`
}

type AggregationConfig struct {
	MaxConcurrency int `toml:"max_concurrency" validate:"min=1"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"required_if=Enabled true"`
	Burst             int     `toml:"burst" validate:"required_if=Enabled true"`
}

type ServiceConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

// TimeoutDuration возвращает таймаут клиента
func (s ServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// PaymentDelay возвращает задержку симуляции оплаты
func (c CheckoutConfig) PaymentDelay() time.Duration {
	return time.Duration(c.PaymentDelayMS) * time.Millisecond
}

// RetentionDuration возвращает срок хранения завершенных попыток
func (c CheckoutConfig) RetentionDuration() time.Duration {
	return time.Duration(c.Retention) * time.Minute
}

// Load читает конфигурацию из TOML-файла, затем применяет .env и переменные окружения.
// Путь из CONFIG_PATH имеет приоритет над аргументом.
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Timezone:        domain.DefaultTimezone,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon_booking",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Cart: CartConfig{
			Driver:        CartDriverMemory,
			PurgeSchedule: "@hourly",
		},
		Checkout: CheckoutConfig{
			Retention:      60,
			PurgeSchedule:  "@every 10m",
			PaymentDelayMS: 2000,
			SuccessRate:    0.8,
		},
		Aggregation: AggregationConfig{
			MaxConcurrency: 8,
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		BookingService:  ServiceConfig{URL: "http://localhost:8081", Timeout: 10},
		UserService:     ServiceConfig{URL: "http://localhost:8082", Timeout: 5},
		StaffService:    ServiceConfig{URL: "http://localhost:8083", Timeout: 5},
		SalonService:    ServiceConfig{URL: "http://localhost:8084", Timeout: 5},
		OfferingService: ServiceConfig{URL: "http://localhost:8085", Timeout: 5},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("config validation failed: unknown timezone %q: %w", c.Server.Timezone, err)
	}

	if c.Cart.Driver == CartDriverPostgres && c.Database.DBName == "" {
		return errors.New("config validation failed: database.dbname is required for postgres cart driver")
	}

	return nil
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}
