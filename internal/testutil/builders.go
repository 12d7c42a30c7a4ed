package testutil

import (
	"time"

	"github.com/planboard/planboard/internal/domain/model"
)

// AccessRequestBuilder provides a fluent interface for building AccessRequest
// values for testing.
type AccessRequestBuilder struct {
	req model.AccessRequest
}

// NewAccessRequest creates an AccessRequestBuilder with sensible defaults.
func NewAccessRequest() *AccessRequestBuilder {
	return &AccessRequestBuilder{
		req: model.AccessRequest{
			ID:             TestTime().UnixMilli(),
			RequesterEmail: "visitor@example.com",
			Reason:         "Requesting dashboard access",
			SubmittedAt:    TestTime(),
		},
	}
}

// WithID sets the request id.
func (b *AccessRequestBuilder) WithID(id int64) *AccessRequestBuilder {
	b.req.ID = id
	return b
}

// WithEmail sets the requester email.
func (b *AccessRequestBuilder) WithEmail(email string) *AccessRequestBuilder {
	b.req.RequesterEmail = email
	return b
}

// WithReason sets the request reason.
func (b *AccessRequestBuilder) WithReason(reason string) *AccessRequestBuilder {
	b.req.Reason = reason
	return b
}

// WithSubmittedAt sets the submission time.
func (b *AccessRequestBuilder) WithSubmittedAt(at time.Time) *AccessRequestBuilder {
	b.req.SubmittedAt = at
	return b
}

// Build returns the constructed AccessRequest.
func (b *AccessRequestBuilder) Build() model.AccessRequest {
	return b.req
}
