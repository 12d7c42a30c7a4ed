package mailbox

// Package mailbox contains an in-memory MailboxRepository double with the
// same whole-blob semantics as the real drivers.

import (
	"context"
	"sync"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

var _ ports.MailboxRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps requests and the read-id set in process memory.
// Error fields let tests simulate a failing store.
type MemoryRepository struct {
	mu       sync.Mutex
	requests []model.AccessRequest
	readIDs  []int64

	AppendErr error
	ListErr   error
	RemoveErr error
	ReadErr   error
	SaveErr   error
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(_ context.Context, req model.AccessRequest) error {
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]model.AccessRequest, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.AccessRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *MemoryRepository) Remove(_ context.Context, id int64) error {
	if r.RemoveErr != nil {
		return r.RemoveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, req := range r.requests {
		if req.ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) ReadIDs(_ context.Context) ([]int64, error) {
	if r.ReadErr != nil {
		return nil, r.ReadErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, len(r.readIDs))
	copy(out, r.readIDs)
	return out, nil
}

func (r *MemoryRepository) SaveReadIDs(_ context.Context, ids []int64) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readIDs = make([]int64, len(ids))
	copy(r.readIDs, ids)
	return nil
}
