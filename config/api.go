package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API connection configuration.
type APIConfig struct {
	// BaseURL is the backend root every request path is joined to.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize normalises values and enforces safe defaults.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8000"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}
