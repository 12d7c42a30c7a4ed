// Package watcher provides the adapter that polls the access-request
// mailbox while an admin session is active.
package watcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/observability/metrics"
	"github.com/planboard/planboard/internal/observability/statsd"
	"github.com/planboard/planboard/internal/service"
)

// DefaultInterval is the unread-count refresh cadence.
const DefaultInterval = 5 * time.Second

// Runner ticks the mailbox unread count on a fixed interval. Ticks are
// skipped while the session is not an authenticated admin; a failed read is
// logged and reported as zero unread for that cycle rather than stopping
// the loop.
type Runner struct {
	mailbox  *service.MailboxService
	sessions *service.SessionManager
	interval time.Duration
	logger   *slog.Logger
	metrics  statsd.Sink
	onUnread func(count int)
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Mailbox  *service.MailboxService
	Sessions *service.SessionManager
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  statsd.Sink

	// OnUnread receives the unread count after every admin-session tick.
	OnUnread func(count int)
}

// NewRunner creates a new mailbox watcher with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Mailbox == nil {
		return nil, errors.New("mailbox service is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Runner{
		mailbox:  opts.Mailbox,
		sessions: opts.Sessions,
		interval: opts.Interval,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		onUnread: opts.OnUnread,
	}, nil
}

// Run starts the poll loop and runs until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting mailbox watcher", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "mailbox watcher stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	if !r.adminSession() {
		metrics.EmitMailboxPoll(r.metrics, metrics.PollMetric{Result: metrics.ResultNoop})
		return
	}

	start := time.Now()
	unread, err := r.mailbox.UnreadCount(ctx)
	elapsed := time.Since(start)

	if err != nil {
		r.logger.WarnContext(ctx, "mailbox poll failed", "error", err)
		metrics.EmitMailboxPoll(r.metrics, metrics.PollMetric{
			Result:   metrics.ResultError,
			Duration: elapsed,
			Err:      err,
		})
		unread = 0
	} else {
		metrics.EmitMailboxPoll(r.metrics, metrics.PollMetric{
			Result:   metrics.ResultSuccess,
			Unread:   unread,
			Duration: elapsed,
		})
	}

	if r.onUnread != nil {
		r.onUnread(unread)
	}
}

func (r *Runner) adminSession() bool {
	session := r.sessions.Current()
	return session.Authenticated() &&
		session.Identity != nil &&
		session.Identity.Role == domainauth.RoleAdmin
}
