package config

import (
	"fmt"
	"strings"
	"time"
)

// MailboxDriver selects the durable store behind the access-request mailbox.
type MailboxDriver string

const (
	// MailboxDriverRedis stores the mailbox blobs in Redis.
	MailboxDriverRedis MailboxDriver = "redis"
	// MailboxDriverSQLite stores the mailbox blobs in a local SQLite file.
	MailboxDriverSQLite MailboxDriver = "sqlite"
)

// UnmarshalText implements encoding.TextUnmarshaler for MailboxDriver.
func (d *MailboxDriver) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "redis", "sqlite":
		*d = MailboxDriver(v)
		return nil
	default:
		return fmt.Errorf("invalid MailboxDriver: %q (valid options: redis, sqlite)", v)
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
	Prefix   string `env:"PREFIX"   envDefault:"planboard:"`
}

// SQLiteConfig contains SQLite file configuration.
type SQLiteConfig struct {
	Path string `env:"PATH" envDefault:"planboard.db"`
	// RunMigrationsOnStart controls whether migrations apply during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// MailboxConfig groups access-request mailbox configuration.
type MailboxConfig struct {
	// Driver selects the durable store.
	Driver MailboxDriver `env:"MAILBOX_DRIVER" envDefault:"redis"`

	// PollInterval is the cadence of the admin unread-count watcher.
	PollInterval time.Duration `env:"MAILBOX_POLL_INTERVAL" envDefault:"5s"`

	Redis  RedisConfig  `envPrefix:"REDIS_"`
	SQLite SQLiteConfig `envPrefix:"SQLITE_"`
}

// Sanitize applies guardrails to mailbox configuration.
func (c *MailboxConfig) Sanitize() {
	if c.Driver == "" {
		c.Driver = MailboxDriverRedis
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	c.Redis.Addr = strings.TrimSpace(c.Redis.Addr)
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "planboard:"
	}
	c.SQLite.Path = strings.TrimSpace(c.SQLite.Path)
	if c.SQLite.Path == "" {
		c.SQLite.Path = "planboard.db"
	}
}
