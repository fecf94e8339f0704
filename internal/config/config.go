// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Slot store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds every setting of the storefront service.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	Store       string        `envconfig:"STORE" default:"memory"`
	DatabaseURL string        `envconfig:"DATABASE_URL"`
	RedisAddr   string        `envconfig:"REDIS_ADDR"`
	RedisDB     int           `envconfig:"REDIS_DB" default:"0"`
	SlotTTL     time.Duration `envconfig:"SLOT_TTL" default:"0"`

	CatalogFile   string        `envconfig:"CATALOG_FILE"`
	AuthDelay     time.Duration `envconfig:"AUTH_DELAY" default:"1s"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"sid"`
	SecureCookie  bool          `envconfig:"SECURE_COOKIE" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE=postgres")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when STORE=redis")
		}
	default:
		return fmt.Errorf("unknown STORE %q", c.Store)
	}
	if c.SlotTTL < 0 {
		return errors.New("SLOT_TTL must not be negative")
	}
	if c.SessionCookie == "" {
		return errors.New("SESSION_COOKIE must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// NewLogger builds the process logger from the configured level and format.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	if strings.EqualFold(c.LogFormat, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
