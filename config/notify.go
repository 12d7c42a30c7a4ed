package config

import "time"

// NotifyConfig controls the transient notification bus.
type NotifyConfig struct {
	// DisplayDuration is how long a notification stays active before
	// auto-dismissal.
	DisplayDuration time.Duration `env:"NOTIFY_DISPLAY_DURATION" envDefault:"4s"`
}

// Sanitize enforces a sane display duration.
func (c *NotifyConfig) Sanitize() {
	if c.DisplayDuration <= 0 {
		c.DisplayDuration = 4 * time.Second
	}
}
