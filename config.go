package opendart

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from DART_* environment variables. An empty BaseURL means
// the package base URL (API_BASE_URL unless changed with SetAPIBaseUrl).
type Config struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"BASE_URL"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig processes the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("DART", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// WithConfig applies a loaded Config to the client. An empty APIKey leaves the
// client's key provider untouched.
func WithConfig(cfg Config) Option {
	return func(c *Client) error {
		if cfg.BaseURL != "" {
			if err := WithBaseURL(cfg.BaseURL)(c); err != nil {
				return err
			}
		}
		if cfg.Timeout > 0 {
			if err := WithHTTPTimeout(cfg.Timeout)(c); err != nil {
				return err
			}
		}
		if cfg.APIKey != "" {
			c.keys = StaticKey(cfg.APIKey)
		}
		return WithDebugLogging(cfg.Debug)(c)
	}
}
