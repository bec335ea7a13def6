package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds the process configuration, read once from the environment at
// startup and immutable afterwards. All variables carry the SHOPIFY_ prefix.
type Config struct {
	// ShopDomain is the myshopify hostname, e.g. "my-store.myshopify.com".
	ShopDomain string `envconfig:"SHOP_DOMAIN"`

	// AccessToken is the Admin API access token sent on every request.
	AccessToken string `envconfig:"ACCESS_TOKEN"`

	// APIVersion selects the Admin REST API version path segment.
	APIVersion string `envconfig:"API_VERSION" default:"2024-01"`

	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from environment variables. A missing shop
// domain or access token is not a startup failure: the server still comes up
// and every remote call fails with whatever error Shopify returns. A warning
// is logged so the misconfiguration is visible.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shopify", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ShopDomain == "" || cfg.AccessToken == "" {
		logrus.WithFields(logrus.Fields{
			"shop_domain_set":  cfg.ShopDomain != "",
			"access_token_set": cfg.AccessToken != "",
		}).Warn("Incomplete Shopify configuration, remote calls will fail")
	}

	return &cfg, nil
}

// ParsedLogLevel maps the configured level string onto a logrus level,
// defaulting to info for unrecognized values.
func (c *Config) ParsedLogLevel() logrus.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
