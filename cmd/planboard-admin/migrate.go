package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/planboard/planboard/config"
	"github.com/planboard/planboard/internal/adapters/sqlite"
)

const defaultMigrationTimeout = 5 * time.Minute

type migrateOptions struct {
	Timeout time.Duration
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts migrateOptions
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout, "Migration timeout")

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	return opts, nil
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	if _, err := parseMigrateFlags(args); err != nil {
		return err
	}

	if cmdCtx.Config.Mailbox.Driver != config.MailboxDriverSQLite {
		return fmt.Errorf("migrate requires MAILBOX_DRIVER=sqlite, got %q", cmdCtx.Config.Mailbox.Driver)
	}

	store, err := sqlite.NewStore(cmdCtx.Config.Mailbox.SQLite.Path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("sqlite close failed", "error", closeErr)
		}
	}()

	cmdCtx.Logger.Info("running mailbox migrations", "path", cmdCtx.Config.Mailbox.SQLite.Path)

	if migrateErr := store.ApplyMigrations(); migrateErr != nil {
		return fmt.Errorf("run migrations: %w", migrateErr)
	}

	cmdCtx.Logger.Info("migrations completed successfully")
	return nil
}
