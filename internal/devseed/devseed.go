// Package devseed populates a development mailbox with sample access
// requests so the inbox and watcher have something to show on first run.
package devseed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// Options configures a seeding run.
type Options struct {
	Repo   ports.MailboxRepository
	Logger *slog.Logger

	// Force seeds even when the mailbox already holds requests.
	Force bool
	// Now lets tests pin the seeding clock.
	Now func() time.Time
}

// sampleRequests returns the seed rows, backdated from now so the inbox
// shows a realistic spread of ages.
func sampleRequests(now time.Time) []model.AccessRequest {
	rows := []struct {
		email  string
		reason string
		age    time.Duration
	}{
		{"jordan@acme.example", "Joining the Acme rollout as a contractor", 72 * time.Hour},
		{"casey@northwind.example", "Need visibility into the Q3 launch board", 26 * time.Hour},
		{"riley@initech.example", "", 45 * time.Minute},
	}

	requests := make([]model.AccessRequest, 0, len(rows))
	for i, row := range rows {
		submitted := now.Add(-row.age)
		requests = append(requests, model.AccessRequest{
			ID:             submitted.UnixMilli() + int64(i),
			RequesterEmail: row.email,
			Reason:         row.reason,
			SubmittedAt:    submitted,
		})
	}
	return requests
}

// Seed appends the sample requests and returns how many were written. An
// already-populated mailbox is left alone unless Force is set.
func Seed(ctx context.Context, opts Options) (int, error) {
	if opts.Repo == nil {
		return 0, fmt.Errorf("devseed: mailbox repository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	existing, err := opts.Repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("devseed: list mailbox: %w", err)
	}
	if len(existing) > 0 && !opts.Force {
		logger.Info("mailbox already populated, skipping seed", "existing", len(existing))
		return 0, nil
	}

	seeded := 0
	for _, req := range sampleRequests(now()) {
		if appendErr := opts.Repo.Append(ctx, req); appendErr != nil {
			return seeded, fmt.Errorf("devseed: append %s: %w", req.RequesterEmail, appendErr)
		}
		seeded++
	}
	logger.Info("seeded sample access requests", "count", seeded)
	return seeded, nil
}
