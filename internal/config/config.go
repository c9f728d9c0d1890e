package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Address         string        `envconfig:"TAILOR_ADDRESS" default:":8080"`
	TLSCert         string        `envconfig:"TAILOR_TLS_CERT" default:""`
	TLSKey          string        `envconfig:"TAILOR_TLS_KEY" default:""`
	StaticDir       string        `envconfig:"TAILOR_STATIC_DIR" default:"./static/main"`
	LogLevel        string        `envconfig:"TAILOR_LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"TAILOR_LOG_FORMAT" default:"json"`
	RateLimit       float64       `envconfig:"TAILOR_RATE_LIMIT" default:"5"`
	RateBurst       int           `envconfig:"TAILOR_RATE_BURST" default:"10"`
	ShutdownTimeout time.Duration `envconfig:"TAILOR_SHUTDOWN_TIMEOUT" default:"5s"`

	// Accounts are switched off when DatabaseURL is empty.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	TokenKey    string `envconfig:"TOKEN_KEY" default:""`
}

// Load reads an optional .env file and then the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) AccountsEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("TAILOR_ADDRESS must not be empty")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("TAILOR_TLS_CERT and TAILOR_TLS_KEY must be set together")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("TAILOR_LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("TAILOR_RATE_LIMIT and TAILOR_RATE_BURST must be positive")
	}
	if c.AccountsEnabled() && c.TokenKey == "" {
		return errors.New("TOKEN_KEY environment variable is not set")
	}
	return nil
}
