package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// ProjectsClient implements ports.ProjectsAPI over /projects.
type ProjectsClient struct{ client *Client }

var _ ports.ProjectsAPI = (*ProjectsClient)(nil)

// NewProjectsClient creates a ProjectsClient.
func NewProjectsClient(client *Client) *ProjectsClient {
	return &ProjectsClient{client: client}
}

func (p *ProjectsClient) List(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := p.client.get(ctx, "/projects/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProjectsClient) Get(ctx context.Context, id int64) (model.Project, error) {
	var out model.Project
	err := p.client.get(ctx, fmt.Sprintf("/projects/%d", id), &out)
	return out, err
}

func (p *ProjectsClient) Create(ctx context.Context, req model.CreateProjectRequest) (model.Project, error) {
	var out model.Project
	err := p.client.post(ctx, "/projects/", req, &out)
	return out, err
}

func (p *ProjectsClient) Update(ctx context.Context, id int64, req model.UpdateProjectRequest) (model.Project, error) {
	var out model.Project
	err := p.client.put(ctx, fmt.Sprintf("/projects/%d", id), req, &out)
	return out, err
}

func (p *ProjectsClient) UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (model.Project, error) {
	var out model.Project
	body := map[string]model.ProjectStatus{"status": status}
	err := p.client.do(ctx, http.MethodPatch, fmt.Sprintf("/projects/%d/status", id), body, &out)
	return out, err
}

func (p *ProjectsClient) Delete(ctx context.Context, id int64) error {
	return p.client.delete(ctx, fmt.Sprintf("/projects/%d", id))
}

// ClientsClient implements ports.ClientsAPI over /clients.
type ClientsClient struct{ client *Client }

var _ ports.ClientsAPI = (*ClientsClient)(nil)

// NewClientsClient creates a ClientsClient.
func NewClientsClient(client *Client) *ClientsClient {
	return &ClientsClient{client: client}
}

func (c *ClientsClient) List(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	if err := c.client.get(ctx, "/clients/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ClientsClient) Get(ctx context.Context, id int64) (model.Client, error) {
	var out model.Client
	err := c.client.get(ctx, fmt.Sprintf("/clients/%d", id), &out)
	return out, err
}

func (c *ClientsClient) Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	var out model.Client
	err := c.client.post(ctx, "/clients/", req, &out)
	return out, err
}

func (c *ClientsClient) Update(ctx context.Context, id int64, req model.CreateClientRequest) (model.Client, error) {
	var out model.Client
	err := c.client.put(ctx, fmt.Sprintf("/clients/%d", id), req, &out)
	return out, err
}

func (c *ClientsClient) Delete(ctx context.Context, id int64) error {
	return c.client.delete(ctx, fmt.Sprintf("/clients/%d", id))
}

// TasksClient implements ports.TasksAPI over /tasks.
type TasksClient struct{ client *Client }

var _ ports.TasksAPI = (*TasksClient)(nil)

// NewTasksClient creates a TasksClient.
func NewTasksClient(client *Client) *TasksClient {
	return &TasksClient{client: client}
}

func (t *TasksClient) List(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	if err := t.client.get(ctx, "/tasks/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TasksClient) Get(ctx context.Context, id int64) (model.Task, error) {
	var out model.Task
	err := t.client.get(ctx, fmt.Sprintf("/tasks/%d", id), &out)
	return out, err
}

func (t *TasksClient) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var out []model.Task
	if err := t.client.get(ctx, fmt.Sprintf("/tasks/user/%d", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TasksClient) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	var out []model.Task
	if err := t.client.get(ctx, fmt.Sprintf("/tasks/project/%d", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *TasksClient) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	var out model.Task
	err := t.client.post(ctx, "/tasks/", req, &out)
	return out, err
}

func (t *TasksClient) Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (model.Task, error) {
	var out model.Task
	err := t.client.put(ctx, fmt.Sprintf("/tasks/%d", id), req, &out)
	return out, err
}

func (t *TasksClient) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (model.Task, error) {
	var out model.Task
	body := map[string]model.TaskStatus{"status": status}
	err := t.client.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", id), body, &out)
	return out, err
}

func (t *TasksClient) Delete(ctx context.Context, id int64) error {
	return t.client.delete(ctx, fmt.Sprintf("/tasks/%d", id))
}

// AssignmentsClient implements ports.AssignmentsAPI over /assignments.
type AssignmentsClient struct{ client *Client }

var _ ports.AssignmentsAPI = (*AssignmentsClient)(nil)

// NewAssignmentsClient creates an AssignmentsClient.
func NewAssignmentsClient(client *Client) *AssignmentsClient {
	return &AssignmentsClient{client: client}
}

func (a *AssignmentsClient) List(ctx context.Context) ([]model.Assignment, error) {
	var out []model.Assignment
	if err := a.client.get(ctx, "/assignments/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AssignmentsClient) ListProjectMembers(ctx context.Context, projectID int64) ([]model.UserSummary, error) {
	var out []model.UserSummary
	if err := a.client.get(ctx, fmt.Sprintf("/assignments/project/%d", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AssignmentsClient) Create(ctx context.Context, req model.CreateAssignmentRequest) (model.Assignment, error) {
	var out model.Assignment
	err := a.client.post(ctx, "/assignments/", req, &out)
	return out, err
}

func (a *AssignmentsClient) Delete(ctx context.Context, id int64) error {
	return a.client.delete(ctx, fmt.Sprintf("/assignments/%d", id))
}

// DashboardClient implements ports.DashboardAPI over /dashboard.
type DashboardClient struct{ client *Client }

var _ ports.DashboardAPI = (*DashboardClient)(nil)

// NewDashboardClient creates a DashboardClient.
func NewDashboardClient(client *Client) *DashboardClient {
	return &DashboardClient{client: client}
}

func (d *DashboardClient) Stats(ctx context.Context) (model.DashboardStats, error) {
	var out model.DashboardStats
	err := d.client.get(ctx, "/dashboard/stats", &out)
	return out, err
}

func (d *DashboardClient) RecentActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	var out []model.ActivityEntry
	if err := d.client.get(ctx, "/dashboard/activity", &out); err != nil {
		return nil, err
	}
	return out, nil
}
