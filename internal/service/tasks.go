package service

import (
	"context"
	"strings"

	apperrors "github.com/planboard/planboard/internal/errors"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/domain/policy"
	"github.com/planboard/planboard/internal/ports"
)

// TasksService gates the task board. Team members see only tasks assigned
// to them and may move only those between statuses; managers and admins see
// and move everything.
type TasksService struct {
	sessions *SessionManager
	api      ports.TasksAPI
}

// NewTasksService constructs a TasksService.
func NewTasksService(sessions *SessionManager, api ports.TasksAPI) *TasksService {
	return &TasksService{sessions: sessions, api: api}
}

// ListVisible returns the tasks the current identity may see.
func (s *TasksService) ListVisible(ctx context.Context) ([]model.Task, error) {
	identity, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionRead)
	if err != nil {
		return nil, err
	}

	if identity.Role == domainauth.RoleTeamMember {
		return s.api.ListByUser(ctx, identity.ID)
	}
	return s.api.List(ctx)
}

// ListByProject returns a project's tasks.
func (s *TasksService) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.api.ListByProject(ctx, projectID)
}

// Create adds a task.
func (s *TasksService) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionCreate); err != nil {
		return model.Task{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return model.Task{}, apperrors.ValidationField("title", "Task title is required")
	}
	if req.ProjectID <= 0 {
		return model.Task{}, apperrors.ValidationField("project_id", "Task must belong to a project")
	}
	if req.Status != "" && !req.Status.Valid() {
		return model.Task{}, apperrors.ValidationField("status", "Unknown task status")
	}
	return s.api.Create(ctx, req)
}

// Update replaces a task's fields.
func (s *TasksService) Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (model.Task, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionUpdate); err != nil {
		return model.Task{}, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return model.Task{}, apperrors.ValidationField("title", "Task title is required")
	}
	return s.api.Update(ctx, id, req)
}

// UpdateStatus moves a task between statuses. The coarse grant comes from
// the policy table; the ownership restriction for team members is enforced
// against the fetched task before the write goes out.
func (s *TasksService) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, error) {
	identity, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionTransition)
	if err != nil {
		return model.Task{}, err
	}
	if !status.Valid() {
		return model.Task{}, apperrors.ValidationField("status", "Unknown task status")
	}

	task, err := s.api.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if !policy.CanTransitionTask(identity, task) {
		return model.Task{}, apperrors.Auth("You can only update tasks assigned to you")
	}

	return s.api.UpdateStatus(ctx, id, status)
}

// Delete removes a task. Admin only by policy.
func (s *TasksService) Delete(ctx context.Context, id int64) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceTask, policy.ActionDelete); err != nil {
		return err
	}
	return s.api.Delete(ctx, id)
}
