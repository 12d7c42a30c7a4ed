package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/planboard/planboard/internal/notify"
)

// runWatch logs in, then runs the mailbox poller until SIGINT or SIGTERM.
// Bus notifications (new unread requests, session expiry) are echoed to
// stdout as they arrive.
func runWatch(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	addLoginFlags(fs, &opts)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := resolveLoginOptions(&opts); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	identity, err := loginAsAdmin(ctx, c, opts)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Info("watching mailbox",
		"user", identity.Email,
		"interval", c.Config.Mailbox.PollInterval,
	)

	seen := make(map[string]struct{})
	unsubscribe := c.Bus.Subscribe(func(active []notify.Notification) {
		for _, n := range active {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			if err := writef(os.Stdout, "[%s] %s\n", n.Kind, n.Message); err != nil {
				cmdCtx.Logger.Warn("write notification failed", "error", err)
			}
		}
	})
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Watcher.Run(gctx)
	})
	return g.Wait()
}
