package service

import (
	"context"
	"strings"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/domain/policy"
	"github.com/planboard/planboard/internal/ports"
)

// ClientsService gates the client table. Team members are denied every
// action here by the policy table, so none of their calls reach the network.
type ClientsService struct {
	sessions *SessionManager
	api      ports.ClientsAPI
}

// NewClientsService constructs a ClientsService.
func NewClientsService(sessions *SessionManager, api ports.ClientsAPI) *ClientsService {
	return &ClientsService{sessions: sessions, api: api}
}

// List returns all clients.
func (s *ClientsService) List(ctx context.Context) ([]model.Client, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceClient, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.api.List(ctx)
}

// Get returns a single client.
func (s *ClientsService) Get(ctx context.Context, id int64) (model.Client, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceClient, policy.ActionRead); err != nil {
		return model.Client{}, err
	}
	return s.api.Get(ctx, id)
}

// Create adds a client.
func (s *ClientsService) Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceClient, policy.ActionCreate); err != nil {
		return model.Client{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.Client{}, apperrors.ValidationField("name", "Client name is required")
	}
	return s.api.Create(ctx, req)
}

// Update replaces a client's fields.
func (s *ClientsService) Update(ctx context.Context, id int64, req model.CreateClientRequest) (model.Client, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceClient, policy.ActionUpdate); err != nil {
		return model.Client{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.Client{}, apperrors.ValidationField("name", "Client name is required")
	}
	return s.api.Update(ctx, id, req)
}

// Delete removes a client. Admin only by policy.
func (s *ClientsService) Delete(ctx context.Context, id int64) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceClient, policy.ActionDelete); err != nil {
		return err
	}
	return s.api.Delete(ctx, id)
}
