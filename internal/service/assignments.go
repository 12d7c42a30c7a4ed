package service

import (
	"context"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/domain/policy"
	"github.com/planboard/planboard/internal/ports"
)

// AssignmentsService manages project membership rows. Team members are
// denied the whole surface by policy.
type AssignmentsService struct {
	sessions *SessionManager
	api      ports.AssignmentsAPI
}

// NewAssignmentsService constructs an AssignmentsService.
func NewAssignmentsService(sessions *SessionManager, api ports.AssignmentsAPI) *AssignmentsService {
	return &AssignmentsService{sessions: sessions, api: api}
}

// List returns every assignment row.
func (s *AssignmentsService) List(ctx context.Context) ([]model.Assignment, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceAssignment, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.api.List(ctx)
}

// ListProjectMembers returns the users assigned to a project.
func (s *AssignmentsService) ListProjectMembers(ctx context.Context, projectID int64) ([]model.UserSummary, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceAssignment, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.api.ListProjectMembers(ctx, projectID)
}

// Assign adds a user to a project.
func (s *AssignmentsService) Assign(ctx context.Context, userID, projectID int64) (model.Assignment, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceAssignment, policy.ActionCreate); err != nil {
		return model.Assignment{}, err
	}
	if userID <= 0 || projectID <= 0 {
		return model.Assignment{}, apperrors.Validation("Both user and project are required")
	}
	return s.api.Create(ctx, model.CreateAssignmentRequest{UserID: userID, ProjectID: projectID})
}

// Remove deletes an assignment row by id. Admin only by policy.
func (s *AssignmentsService) Remove(ctx context.Context, id int64) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceAssignment, policy.ActionDelete); err != nil {
		return err
	}
	return s.api.Delete(ctx, id)
}

// RemoveMember finds the assignment row linking a user to a project and
// deletes it. The backend only deletes by assignment id, so the row is
// looked up first.
func (s *AssignmentsService) RemoveMember(ctx context.Context, userID, projectID int64) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceAssignment, policy.ActionDelete); err != nil {
		return err
	}

	rows, err := s.api.List(ctx)
	if err != nil {
		return err
	}
	for _, a := range rows {
		if a.UserID == userID && a.ProjectID == projectID {
			return s.api.Delete(ctx, a.ID)
		}
	}
	return apperrors.NotFoundf("user %d is not assigned to project %d", userID, projectID)
}
