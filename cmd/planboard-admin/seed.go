package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/planboard/planboard/internal/devseed"
)

type seedOptions struct {
	Force bool
}

func parseSeedFlags(args []string) (seedOptions, error) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts seedOptions
	fs.BoolVar(&opts.Force, "force", false, "Seed even when the mailbox already holds requests")

	if err := fs.Parse(args); err != nil {
		return seedOptions{}, err
	}
	return opts, nil
}

func runSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseSeedFlags(args)
	if err != nil {
		return err
	}

	if !cmdCtx.Config.IsDev {
		return fmt.Errorf("seed requires development mode (set DEV=true)")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, mailboxCommandTimeout)
	defer cancel()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	count, err := devseed.Seed(ctx, devseed.Options{
		Repo:   c.MailboxRepo,
		Logger: cmdCtx.Logger,
		Force:  opts.Force,
	})
	if err != nil {
		return err
	}
	return writef(os.Stdout, "Seeded %d access request(s)\n", count)
}
