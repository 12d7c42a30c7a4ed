package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
)

func TestClients_TeamMemberDeniedWithoutNetworkCall(t *testing.T) {
	api := &fakeClientsAPI{clients: []model.Client{{ID: 1, Name: "Acme"}}}
	svc := NewClientsService(sessionsWith(t, memberIdentity()), api)
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.True(t, apperrors.IsAuth(err))

	_, err = svc.Get(ctx, 1)
	assert.True(t, apperrors.IsAuth(err))

	_, err = svc.Create(ctx, model.CreateClientRequest{Name: "New"})
	assert.True(t, apperrors.IsAuth(err))

	err = svc.Delete(ctx, 1)
	assert.True(t, apperrors.IsAuth(err))

	assert.Equal(t, 0, api.total(), "denied calls must never reach the API")
}

func TestClients_ManagerCanReadAndWriteButNotDelete(t *testing.T) {
	api := &fakeClientsAPI{clients: []model.Client{{ID: 1, Name: "Acme"}}}
	svc := NewClientsService(sessionsWith(t, managerIdentity()), api)
	ctx := context.Background()

	clients, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	_, err = svc.Create(ctx, model.CreateClientRequest{Name: "Globex"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, model.CreateClientRequest{Name: "Acme Corp"})
	require.NoError(t, err)

	err = svc.Delete(ctx, 1)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, 0, api.count("Delete"))
}

func TestClients_AdminCanDelete(t *testing.T) {
	api := &fakeClientsAPI{}
	svc := NewClientsService(sessionsWith(t, adminIdentity()), api)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, 1, api.count("Delete"))
}

func TestClients_NameRequired(t *testing.T) {
	api := &fakeClientsAPI{}
	svc := NewClientsService(sessionsWith(t, adminIdentity()), api)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateClientRequest{Name: "   "})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "name", apperrors.GetField(err))

	_, err = svc.Update(ctx, 1, model.CreateClientRequest{})
	assert.True(t, apperrors.IsValidation(err))

	assert.Equal(t, 0, api.total())
}

func TestClients_AnonymousDenied(t *testing.T) {
	api := &fakeClientsAPI{}
	svc := NewClientsService(anonymousSessions(t), api)

	_, err := svc.List(context.Background())
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, 0, api.total())
}
