package redis

// Package redis provides Redis-based adapters for the planboard system.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

const (
	requestsKey = "access_requests"
	readIDsKey  = "read_requests"
)

// MailboxStore keeps the access-request list and the read-id set as two
// JSON blobs under a common prefix. Mutations read the whole blob, change
// it, and write it back; concurrent writers are last-write-wins, which is
// the accepted contract for this store.
type MailboxStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.MailboxRepository = (*MailboxStore)(nil)

// NewMailboxStore creates a MailboxStore with the default "planboard:" prefix.
func NewMailboxStore(client redis.UniversalClient) *MailboxStore {
	return NewMailboxStoreWithPrefix(client, "planboard:")
}

// NewMailboxStoreWithPrefix creates a MailboxStore with a custom key prefix.
func NewMailboxStoreWithPrefix(client redis.UniversalClient, prefix string) *MailboxStore {
	return &MailboxStore{client: client, prefix: prefix}
}

func (s *MailboxStore) Append(ctx context.Context, req model.AccessRequest) error {
	requests, err := s.loadRequests(ctx)
	if err != nil {
		return err
	}
	requests = append(requests, req)
	return s.saveRequests(ctx, requests)
}

func (s *MailboxStore) List(ctx context.Context) ([]model.AccessRequest, error) {
	return s.loadRequests(ctx)
}

func (s *MailboxStore) Remove(ctx context.Context, id int64) error {
	requests, err := s.loadRequests(ctx)
	if err != nil {
		return err
	}
	kept := requests[:0]
	for _, req := range requests {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	if len(kept) == len(requests) {
		return nil
	}
	return s.saveRequests(ctx, kept)
}

func (s *MailboxStore) ReadIDs(ctx context.Context) ([]int64, error) {
	data, err := s.client.Get(ctx, s.prefix+readIDsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get read ids: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("unmarshal read ids: %w", err)
	}
	return ids, nil
}

func (s *MailboxStore) SaveReadIDs(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal read ids: %w", err)
	}
	return s.client.Set(ctx, s.prefix+readIDsKey, data, 0).Err()
}

func (s *MailboxStore) loadRequests(ctx context.Context) ([]model.AccessRequest, error) {
	data, err := s.client.Get(ctx, s.prefix+requestsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get requests: %w", err)
	}

	var requests []model.AccessRequest
	if err := json.Unmarshal([]byte(data), &requests); err != nil {
		return nil, fmt.Errorf("unmarshal requests: %w", err)
	}
	return requests, nil
}

func (s *MailboxStore) saveRequests(ctx context.Context, requests []model.AccessRequest) error {
	if requests == nil {
		requests = []model.AccessRequest{}
	}
	data, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("marshal requests: %w", err)
	}
	return s.client.Set(ctx, s.prefix+requestsKey, data, 0).Err()
}
