package ports

import (
	"context"

	"github.com/planboard/planboard/internal/domain/model"
)

// The API ports below are implemented by the HTTP client in
// internal/adapters/apiclient. Implementations attach the current bearer
// token themselves (via a token source), so callers never handle
// credentials per request.

// ProjectsAPI covers the /projects surface.
type ProjectsAPI interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id int64) (model.Project, error)
	Create(ctx context.Context, req model.CreateProjectRequest) (model.Project, error)
	Update(ctx context.Context, id int64, req model.UpdateProjectRequest) (model.Project, error)
	UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ClientsAPI covers the /clients surface.
type ClientsAPI interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id int64) (model.Client, error)
	Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	Update(ctx context.Context, id int64, req model.CreateClientRequest) (model.Client, error)
	Delete(ctx context.Context, id int64) error
}

// TasksAPI covers the /tasks surface.
type TasksAPI interface {
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error)
	Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (model.Task, error)
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

// AssignmentsAPI covers the /assignments surface.
type AssignmentsAPI interface {
	List(ctx context.Context) ([]model.Assignment, error)
	ListProjectMembers(ctx context.Context, projectID int64) ([]model.UserSummary, error)
	Create(ctx context.Context, req model.CreateAssignmentRequest) (model.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

// RegistrationAPI creates user accounts (admin-only by policy).
type RegistrationAPI interface {
	Register(ctx context.Context, req model.RegisterUserRequest) error
}

// DashboardAPI covers the landing-page aggregates.
type DashboardAPI interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]model.ActivityEntry, error)
}
