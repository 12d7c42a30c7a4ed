package service

import (
	"context"
	"strings"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/domain/policy"
	"github.com/planboard/planboard/internal/ports"
)

// UsersService exposes the admin-only registration surface.
type UsersService struct {
	sessions *SessionManager
	api      ports.RegistrationAPI
}

// NewUsersService constructs a UsersService.
func NewUsersService(sessions *SessionManager, api ports.RegistrationAPI) *UsersService {
	return &UsersService{sessions: sessions, api: api}
}

// Register creates a new user account. Only admins pass the policy gate;
// everyone else is denied before any request is made.
func (s *UsersService) Register(ctx context.Context, req model.RegisterUserRequest) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceRegistration, policy.ActionCreate); err != nil {
		return err
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.ValidationField("email", "Email is required")
	}
	if req.Password == "" {
		return apperrors.ValidationField("password", "Password is required")
	}
	if req.Role != "" && !req.Role.Valid() {
		return apperrors.ValidationField("role", "Unknown role")
	}
	return s.api.Register(ctx, req)
}
