// Package config читает настройки сервиса из config.yaml и переменных окружения MEMBERS_*.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	ProfileLocal = "local"

	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config: все настройки сервиса.
type Config struct {
	Profile string       `mapstructure:"profile"`
	HTTP    HTTPConfig   `mapstructure:"http"`
	DB      DBConfig     `mapstructure:"database"`
	Seed    SeedConfig   `mapstructure:"seed"`
	Log     LogConfig    `mapstructure:"log"`
	Search  SearchConfig `mapstructure:"search"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig: хранилище postgres (DSN обязателен) или memory.
type DBConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

type SeedConfig struct {
	Members int `mapstructure:"members"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SearchConfig: размеры страниц и время жизни кэша count-запросов (0 выключает кэш).
type SearchConfig struct {
	CountCacheTTL   time.Duration `mapstructure:"count_cache_ttl"`
	DefaultPageSize int           `mapstructure:"default_page_size"`
	MaxPageSize     int           `mapstructure:"max_page_size"`
}

// SlogLevel переводит log.level в slog.Level; неизвестное значение даёт info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// IsLocal: профиль локальной разработки, в нём serve заполняет хранилище тестовыми данными.
func (c *Config) IsLocal() bool {
	return c.Profile == ProfileLocal
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database.driver %q", c.DB.Driver)
	}
	if c.Search.DefaultPageSize <= 0 || c.Search.MaxPageSize <= 0 {
		return fmt.Errorf("search page sizes must be positive")
	}
	if c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("search.default_page_size %d exceeds search.max_page_size %d",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	if c.Seed.Members < 0 {
		return fmt.Errorf("seed.members must not be negative")
	}
	return nil
}
