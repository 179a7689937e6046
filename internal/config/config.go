package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

// Бэкенды кеша снапшотов
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	VenueService VenueServiceConfig `toml:"venue_service"`
	Cache        CacheConfig        `toml:"cache"`
	Redis        RedisConfig        `toml:"redis"`
	Sessions     SessionsConfig     `toml:"sessions"`
	Booking      BookingConfig      `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"` // false = журнал отправок не пишется
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type VenueServiceConfig struct {
	URL             string `toml:"url"`
	Timeout         int    `toml:"timeout"`          // секунды
	DefaultTimezone string `toml:"default_timezone"` // для площадок без часового пояса
}

type CacheConfig struct {
	Backend string `toml:"backend"` // memory | redis
	TTL     int    `toml:"ttl"`     // секунды
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type SessionsConfig struct {
	TTL           int `toml:"ttl"`            // секунды неактивности до удаления
	SweepInterval int `toml:"sweep_interval"` // секунды
}

type BookingConfig struct {
	SubmitTimeout      int `toml:"submit_timeout"` // секунды на вызов бэкенда при отправке
	AdvanceBookingDays int `toml:"advance_booking_days"`
	DateOptionsDays    int `toml:"date_options_days"`
}

// Load загружает конфиг из файла; CONFIG_PATH имеет приоритет над path
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфиг со значениями по умолчанию, поверх которых читается файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "slot-service",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsPath:  "migrations",
		},
		VenueService: VenueServiceConfig{
			Timeout:         5,
			DefaultTimezone: "UTC",
		},
		Cache: CacheConfig{
			Backend: CacheBackendMemory,
			TTL:     60,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Sessions: SessionsConfig{
			TTL:           1800,
			SweepInterval: 60,
		},
		Booking: BookingConfig{
			SubmitTimeout:      10,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
			DateOptionsDays:    domain.DefaultDateOptionsDays,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.VenueService.URL == "" {
		return fmt.Errorf("%w: venue_service.url is required", ErrInvalidConfig)
	}
	if c.VenueService.Timeout <= 0 {
		return fmt.Errorf("%w: venue_service.timeout must be positive", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.VenueService.DefaultTimezone); err != nil {
		return fmt.Errorf("%w: venue_service.default_timezone: %v", ErrInvalidConfig, err)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis cache", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache.backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}

	if c.Sessions.TTL <= 0 || c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("%w: sessions.ttl and sessions.sweep_interval must be positive", ErrInvalidConfig)
	}
	if c.Booking.SubmitTimeout <= 0 {
		return fmt.Errorf("%w: booking.submit_timeout must be positive", ErrInvalidConfig)
	}
	if c.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: booking.advance_booking_days must not be negative", ErrInvalidConfig)
	}
	if c.Booking.DateOptionsDays <= 0 {
		return fmt.Errorf("%w: booking.date_options_days must be positive", ErrInvalidConfig)
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (c *Config) SubmitTimeout() time.Duration { return seconds(c.Booking.SubmitTimeout) }

func (c *Config) CacheTTL() time.Duration { return seconds(c.Cache.TTL) }

func (c *Config) SessionTTL() time.Duration { return seconds(c.Sessions.TTL) }

func (c *Config) SweepInterval() time.Duration { return seconds(c.Sessions.SweepInterval) }
