package ports

import (
	"context"

	"github.com/planboard/planboard/internal/domain/model"
)

// MailboxRepository persists access requests and the separate read-id set.
// Drivers store each side as a whole JSON blob and read-modify-write it on
// every mutation, so concurrent writers race last-write-wins. That is an
// accepted property of this single-tenant convenience store, not a bug to
// fix silently.
type MailboxRepository interface {
	// Append adds a request to the tail of the stored list.
	Append(ctx context.Context, req model.AccessRequest) error

	// List returns all stored requests in insertion order.
	List(ctx context.Context) ([]model.AccessRequest, error)

	// Remove deletes the request with the given id. Removing an unknown id
	// is not an error.
	Remove(ctx context.Context, id int64) error

	// ReadIDs returns the stored read-id set.
	ReadIDs(ctx context.Context) ([]int64, error)

	// SaveReadIDs replaces the stored read-id set.
	SaveReadIDs(ctx context.Context, ids []int64) error
}
