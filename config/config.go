package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API configuration
//   - mailbox.go: Access-request mailbox configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// DevAuth swaps the real API auth backend for an in-process account
	// table. Honored only in development mode.
	DevAuth bool `env:"DEV_AUTH" envDefault:"false"`

	// API is the backend API configuration.
	API APIConfig `envPrefix:"API_"`

	// Mailbox is the access-request mailbox configuration.
	Mailbox MailboxConfig

	// Notify is the transient notification configuration.
	Notify NotifyConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Mailbox.Sanitize()
	c.Notify.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
	if !c.IsDev {
		c.DevAuth = false
	}
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
