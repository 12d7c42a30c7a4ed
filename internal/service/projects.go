package service

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/planboard/planboard/internal/errors"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/domain/policy"
	"github.com/planboard/planboard/internal/ports"
)

// ProjectsService gates the project table behind the role policy. Team
// members only see projects whose member list contains them; membership is
// checked per project row against the assignment set.
type ProjectsService struct {
	sessions    *SessionManager
	api         ports.ProjectsAPI
	assignments ports.AssignmentsAPI
	logger      *slog.Logger
}

// ProjectsServiceOptions groups dependencies for ProjectsService.
type ProjectsServiceOptions struct {
	Sessions    *SessionManager
	API         ports.ProjectsAPI
	Assignments ports.AssignmentsAPI
	Logger      *slog.Logger
}

// NewProjectsService constructs a ProjectsService.
func NewProjectsService(opts ProjectsServiceOptions) *ProjectsService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectsService{
		sessions:    opts.Sessions,
		api:         opts.API,
		assignments: opts.Assignments,
		logger:      logger,
	}
}

// ListVisible returns the projects the current identity may see.
func (s *ProjectsService) ListVisible(ctx context.Context) ([]model.Project, error) {
	identity, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionRead)
	if err != nil {
		return nil, err
	}

	projects, err := s.api.List(ctx)
	if err != nil {
		return nil, err
	}

	if identity.Role != domainauth.RoleTeamMember {
		return projects, nil
	}

	visible := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		member, err := s.isMember(ctx, identity.ID, p.ID)
		if err != nil {
			// A failed membership lookup hides the project rather than
			// leaking it.
			s.logger.WarnContext(ctx, "membership lookup failed", "project_id", p.ID, "error", err)
			continue
		}
		if member {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// Get returns a single project, applying the same visibility scoping as
// ListVisible.
func (s *ProjectsService) Get(ctx context.Context, id int64) (model.Project, error) {
	identity, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionRead)
	if err != nil {
		return model.Project{}, err
	}

	project, err := s.api.Get(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	if identity.Role == domainauth.RoleTeamMember {
		member, err := s.isMember(ctx, identity.ID, project.ID)
		if err != nil {
			return model.Project{}, err
		}
		if !member {
			return model.Project{}, apperrors.NotFoundf("project %d not found", id)
		}
	}
	return project, nil
}

// Create adds a project.
func (s *ProjectsService) Create(ctx context.Context, req model.CreateProjectRequest) (model.Project, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionCreate); err != nil {
		return model.Project{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.Project{}, apperrors.ValidationField("name", "Project name is required")
	}
	if req.Status != "" && !req.Status.Valid() {
		return model.Project{}, apperrors.ValidationField("status", "Unknown project status")
	}
	return s.api.Create(ctx, req)
}

// Update replaces a project's fields.
func (s *ProjectsService) Update(ctx context.Context, id int64, req model.UpdateProjectRequest) (model.Project, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionUpdate); err != nil {
		return model.Project{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.Project{}, apperrors.ValidationField("name", "Project name is required")
	}
	return s.api.Update(ctx, id, req)
}

// UpdateStatus moves a project between statuses.
func (s *ProjectsService) UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (model.Project, error) {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionTransition); err != nil {
		return model.Project{}, err
	}
	if !status.Valid() {
		return model.Project{}, apperrors.ValidationField("status", "Unknown project status")
	}
	return s.api.UpdateStatus(ctx, id, status)
}

// Delete removes a project. Admin only by policy.
func (s *ProjectsService) Delete(ctx context.Context, id int64) error {
	if _, err := requireCan(s.sessions.Current(), policy.ResourceProject, policy.ActionDelete); err != nil {
		return err
	}
	return s.api.Delete(ctx, id)
}

func (s *ProjectsService) isMember(ctx context.Context, userID, projectID int64) (bool, error) {
	members, err := s.assignments.ListProjectMembers(ctx, projectID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.ID == userID {
			return true, nil
		}
	}
	return false, nil
}
