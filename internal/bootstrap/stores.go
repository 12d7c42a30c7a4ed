package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/planboard/planboard/config"
	"github.com/planboard/planboard/internal/adapters/sqlite"
)

// ConnectRedis establishes and verifies a Redis connection.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr, "db", cfg.DB)
	}
	return client, nil
}

// OpenSQLite opens the SQLite store and optionally applies migrations.
func OpenSQLite(cfg config.SQLiteConfig, logger *slog.Logger) (*sqlite.Store, error) {
	store, err := sqlite.NewStore(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", cfg.Path, err)
	}

	if cfg.RunMigrationsOnStart {
		if err := store.ApplyMigrations(); err != nil {
			closeErr := store.Close()
			return nil, errors.Join(fmt.Errorf("apply migrations: %w", err), closeErr)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if pingErr := store.Ping(ctx); pingErr != nil {
		closeErr := store.Close()
		return nil, errors.Join(fmt.Errorf("ping sqlite: %w", pingErr), closeErr)
	}

	if logger != nil {
		logger.Info("sqlite opened", "path", cfg.Path)
	}
	return store, nil
}
