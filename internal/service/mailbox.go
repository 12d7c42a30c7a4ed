package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// MailboxService is the access-request inbox: anonymous visitors submit
// account requests, an admin reads and prunes them. Requests live in a
// durable store so they survive restarts and can be submitted before any
// admin session exists.
type MailboxService struct {
	repo   ports.MailboxRepository
	now    func() time.Time
	logger *slog.Logger

	mu     sync.Mutex
	lastID int64
}

// MailboxServiceOptions groups dependencies for MailboxService.
type MailboxServiceOptions struct {
	Repo   ports.MailboxRepository
	Now    func() time.Time // defaults to time.Now
	Logger *slog.Logger
}

// NewMailboxService constructs a MailboxService.
func NewMailboxService(opts MailboxServiceOptions) *MailboxService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &MailboxService{
		repo:   opts.Repo,
		now:    now,
		logger: logger,
	}
}

// Submit appends an access request. The email is required after trimming;
// the reason is optional. Ids derive from the submission clock in unix
// milliseconds, nudged forward when two submissions land inside the same
// millisecond, so they stay monotonic within a process.
func (s *MailboxService) Submit(ctx context.Context, email, reason string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.ValidationField("email", "Please enter your email")
	}

	req := model.AccessRequest{
		ID:             s.nextID(),
		RequesterEmail: email,
		Reason:         strings.TrimSpace(reason),
		SubmittedAt:    s.now(),
	}

	if err := s.repo.Append(ctx, req); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to send request")
	}
	return nil
}

// List returns all requests in insertion order with the Read flag derived
// from the read-id set.
func (s *MailboxService) List(ctx context.Context) ([]model.AccessRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to load requests")
	}

	readSet, err := s.readSet(ctx)
	if err != nil {
		return nil, err
	}

	for i := range requests {
		_, requests[i].Read = readSet[requests[i].ID]
	}
	return requests, nil
}

// UnreadCount returns how many stored requests have no entry in the read-id
// set. Stale read ids (for removed requests) do not count against anything.
func (s *MailboxService) UnreadCount(ctx context.Context) (int, error) {
	requests, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	unread := 0
	for _, r := range requests {
		if !r.Read {
			unread++
		}
	}
	return unread, nil
}

// MarkAllRead adds every unread request id to the read-id set. Calling it
// again is a no-op; the unread count stays zero.
func (s *MailboxService) MarkAllRead(ctx context.Context) error {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to load requests")
	}

	readIDs, err := s.repo.ReadIDs(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to load read state")
	}

	seen := make(map[int64]struct{}, len(readIDs))
	for _, id := range readIDs {
		seen[id] = struct{}{}
	}

	changed := false
	for _, r := range requests {
		if _, ok := seen[r.ID]; !ok {
			readIDs = append(readIDs, r.ID)
			seen[r.ID] = struct{}{}
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.repo.SaveReadIDs(ctx, readIDs); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to save read state")
	}
	return nil
}

// Remove deletes a request. The read-id set is intentionally left alone: a
// removed id lingering there is harmless for counting, and reconciling it
// would change observable behavior for an id reused at the same timestamp.
func (s *MailboxService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to remove request")
	}
	return nil
}

func (s *MailboxService) readSet(ctx context.Context) (map[int64]struct{}, error) {
	readIDs, err := s.repo.ReadIDs(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTransport, "Failed to load read state")
	}
	set := make(map[int64]struct{}, len(readIDs))
	for _, id := range readIDs {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *MailboxService) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
