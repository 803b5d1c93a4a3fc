// Package config loads service configuration from environment variables
// with sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all articled settings.
type Config struct {
	// Port the HTTP server listens on.
	Port int
	// Timeout is the default navigation timeout per scrape.
	Timeout time.Duration
	// Headless disables the browser UI.
	Headless bool
	// ProxyURL routes browser traffic through a proxy when set.
	ProxyURL string
	// AllowedOrigins for CORS.
	AllowedOrigins []string
	// StaticFallback retries failed renders with a plain HTTP fetch.
	StaticFallback bool
	// Debug enables development logging and gin debug mode.
	Debug bool
}

// Load reads configuration from ARTICLED_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("articled")
	v.AutomaticEnv()

	v.SetDefault("port", 8000)
	v.SetDefault("timeout", "30s")
	v.SetDefault("headless", true)
	v.SetDefault("proxy", "")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("static_fallback", true)
	v.SetDefault("debug", false)

	cfg := &Config{
		Port:           v.GetInt("port"),
		Timeout:        v.GetDuration("timeout"),
		Headless:       v.GetBool("headless"),
		ProxyURL:       v.GetString("proxy"),
		AllowedOrigins: v.GetStringSlice("allowed_origins"),
		StaticFallback: v.GetBool("static_fallback"),
		Debug:          v.GetBool("debug"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout: %s", cfg.Timeout)
	}

	return cfg, nil
}
