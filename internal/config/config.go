package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable. Tags carry the full name so nested
// structs do not add their own segment.
const EnvPrefix = "STOREFRONT"

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server     ServerConfig
	Storefront StorefrontConfig
	Session    SessionConfig
	LogLevel   string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat  string `envconfig:"STOREFRONT_LOG_FORMAT" default:"json"`
}

type ServerConfig struct {
	Port            string        `envconfig:"STOREFRONT_PORT" default:"8080"`
	Host            string        `envconfig:"STOREFRONT_HOST" default:"0.0.0.0"`
	ReadTimeout     time.Duration `envconfig:"STOREFRONT_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"STOREFRONT_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_SHUTDOWN_TIMEOUT" default:"30s"`
	AllowedOrigins  []string      `envconfig:"STOREFRONT_ALLOWED_ORIGINS" default:"*"`
}

type StorefrontConfig struct {
	Name     string `envconfig:"STOREFRONT_NAME" default:"DripVault Plug"`
	Currency string `envconfig:"STOREFRONT_CURRENCY" default:"€"`
	// MessagingURL is the chat deep-link base; messages are appended as ?text=.
	MessagingURL string `envconfig:"STOREFRONT_MESSAGING_URL" default:"https://wa.me/"`
	// CatalogFile replaces the built-in catalog when set.
	CatalogFile string `envconfig:"STOREFRONT_CATALOG_FILE"`
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"STOREFRONT_SESSION_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"STOREFRONT_SESSION_SWEEP_INTERVAL" default:"5m"`
	CookieName    string        `envconfig:"STOREFRONT_SESSION_COOKIE" default:"storefront_session"`
}

// Load reads configuration from environment variables, after a local .env file if one exists
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if strings.TrimSpace(c.Storefront.Name) == "" {
		return fmt.Errorf("storefront name is required")
	}

	if c.Storefront.Currency == "" {
		return fmt.Errorf("currency symbol is required")
	}

	u, err := url.Parse(c.Storefront.MessagingURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid messaging url: %q", c.Storefront.MessagingURL)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}

	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session sweep interval must be positive")
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	return nil
}

// RequestTimeout bounds handler execution so a slow request is answered
// with 504 before the server's write deadline cuts the connection. Zero
// means no handler timeout.
func (s ServerConfig) RequestTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return 0
	}
	return s.WriteTimeout - min(time.Second, s.WriteTimeout/10)
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}
