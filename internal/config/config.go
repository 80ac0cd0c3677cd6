package config

import (
	"errors"
	"fmt"
	"os"
	"ride-plan-service/internal/platform/db"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env   string      `yaml:"env" env:"ENV" env-default:"local"`
	Log   LogConfig   `yaml:"log"`
	HTTP  HTTPConfig  `yaml:"http"`
	DB    DBConfig    `yaml:"db"`
	Redis RedisConfig `yaml:"redis"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	RateLimit       int           `yaml:"rate_limit" env:"RATE_LIMIT_REQUESTS" env-default:"120"`
	RateWindow      time.Duration `yaml:"rate_window" env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

type DBConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Path     string `yaml:"path" env:"DB_PATH" env-default:"data/app.db"`
	URL      string `yaml:"url" env:"DATABASE_URL"`
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`
}

// Redis is optional; an empty address disables the catalog cache.
type RedisConfig struct {
	Addr       string        `yaml:"addr" env:"REDIS_ADDR"`
	CatalogTTL time.Duration `yaml:"catalog_ttl" env:"CATALOG_CACHE_TTL" env-default:"30s"`
}

// Load reads the YAML file named by CONFIG_PATH when it is set, then applies
// environment overrides and defaults.
func Load() (*Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("cannot read the config: " + err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	d, err := c.DB.Dialect()
	if err != nil {
		return err
	}
	if d == db.DialectPostgres && strings.TrimSpace(c.DB.URL) == "" {
		return errors.New("DATABASE_URL is required for the pgx driver")
	}
	if strings.TrimSpace(c.HTTP.Port) == "" {
		return errors.New("PORT is required")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

func (c DBConfig) Dialect() (db.Dialect, error) {
	return db.ParseDialect(c.Driver)
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	d, err := c.Dialect()
	if err == nil && d == db.DialectPostgres {
		return c.URL
	}
	return c.Path
}

// Get returns the environment value for key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
