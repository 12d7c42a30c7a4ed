package model

import "time"

// AccessRequest is a durable record of an anonymous visitor asking for an
// account. Requests survive process restarts so an admin polling after the
// fact still sees them; they never expire on their own.
type AccessRequest struct {
	// ID is derived from the submission clock (unix milliseconds), nudged
	// forward on collision within a batch. Treated as unique in practice.
	ID             int64     `json:"id"`
	RequesterEmail string    `json:"email"`
	Reason         string    `json:"reason,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`

	// Read is derived from the separate read-id set when listing. It is
	// never persisted with the request itself.
	Read bool `json:"-"`
}
