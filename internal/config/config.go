package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается при невалидных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса. Читается из TOML, затем переопределяется переменными окружения.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Cache      CacheConfig      `toml:"cache"`
	Redis      RedisConfig      `toml:"redis"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"SERVER_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path" env:"METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// SchedulingConfig значения сетки слотов по умолчанию, если в БД нет конфигурации
type SchedulingConfig struct {
	Timezone       string `toml:"timezone" env:"SCHEDULING_TIMEZONE"`
	StepMinutes    int    `toml:"step_minutes" env:"SCHEDULING_STEP_MINUTES"`
	HorizonDays    int    `toml:"horizon_days" env:"SCHEDULING_HORIZON_DAYS"`
	MinLeadMinutes int    `toml:"min_lead_minutes" env:"SCHEDULING_MIN_LEAD_MINUTES"`

	location *time.Location
}

// Location часовой пояс салона (заполняется в Load)
func (c SchedulingConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled" env:"CACHE_ENABLED"`
	Backend    string `toml:"backend" env:"CACHE_BACKEND"` // lru | redis
	Size       int    `toml:"size" env:"CACHE_SIZE"`
	TTLSeconds int    `toml:"ttl_seconds" env:"CACHE_TTL_SECONDS"`
	KeyPrefix  string `toml:"key_prefix" env:"CACHE_KEY_PREFIX"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db" env:"REDIS_DB"`
}

const (
	CacheBackendLRU   = "lru"
	CacheBackendRedis = "redis"
)

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon_availability",
		},
		Scheduling: SchedulingConfig{
			Timezone:    "Europe/Moscow",
			StepMinutes: 30,
			HorizonDays: 30,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    CacheBackendLRU,
			Size:       256,
			TTLSeconds: 300,
			KeyPrefix:  "salon:schedule",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
	}
}

// Load читает конфигурацию из TOML-файла, подгружает .env и применяет переменные окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.Scheduling.Timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown timezone %q: %v", ErrInvalidConfig, c.Scheduling.Timezone, err)
	}
	c.Scheduling.location = loc

	if c.Scheduling.StepMinutes < 5 || c.Scheduling.StepMinutes > 240 {
		return fmt.Errorf("%w: scheduling.step_minutes must be in 5..240", ErrInvalidConfig)
	}
	if c.Scheduling.HorizonDays < 1 || c.Scheduling.HorizonDays > 365 {
		return fmt.Errorf("%w: scheduling.horizon_days must be in 1..365", ErrInvalidConfig)
	}
	if c.Scheduling.MinLeadMinutes < 0 {
		return fmt.Errorf("%w: scheduling.min_lead_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port", ErrInvalidConfig)
	}

	if c.Cache.Enabled {
		switch c.Cache.Backend {
		case CacheBackendLRU:
			if c.Cache.Size <= 0 {
				return fmt.Errorf("%w: cache.size must be positive", ErrInvalidConfig)
			}
		case CacheBackendRedis:
			if c.Redis.Addr == "" {
				return fmt.Errorf("%w: redis.addr is required for redis cache", ErrInvalidConfig)
			}
		default:
			return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
		}
	}

	return nil
}
