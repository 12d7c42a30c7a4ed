package service

import (
	"context"
	"sync"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// Recording fakes for the API ports. Every fake counts calls so tests can
// assert that a policy denial made no network call at all.

type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) bump(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[name]++
}

func (c *callCounter) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func (c *callCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.calls {
		n += v
	}
	return n
}

type fakeProjectsAPI struct {
	callCounter
	projects []model.Project
	err      error
}

var _ ports.ProjectsAPI = (*fakeProjectsAPI)(nil)

func (f *fakeProjectsAPI) List(context.Context) ([]model.Project, error) {
	f.bump("List")
	return f.projects, f.err
}

func (f *fakeProjectsAPI) Get(_ context.Context, id int64) (model.Project, error) {
	f.bump("Get")
	for _, p := range f.projects {
		if p.ID == id {
			return p, f.err
		}
	}
	return model.Project{ID: id}, f.err
}

func (f *fakeProjectsAPI) Create(_ context.Context, req model.CreateProjectRequest) (model.Project, error) {
	f.bump("Create")
	return model.Project{ID: 100, Name: req.Name, Status: req.Status}, f.err
}

func (f *fakeProjectsAPI) Update(_ context.Context, id int64, req model.UpdateProjectRequest) (model.Project, error) {
	f.bump("Update")
	return model.Project{ID: id, Name: req.Name}, f.err
}

func (f *fakeProjectsAPI) UpdateStatus(_ context.Context, id int64, status model.ProjectStatus) (model.Project, error) {
	f.bump("UpdateStatus")
	return model.Project{ID: id, Status: status}, f.err
}

func (f *fakeProjectsAPI) Delete(_ context.Context, _ int64) error {
	f.bump("Delete")
	return f.err
}

type fakeClientsAPI struct {
	callCounter
	clients []model.Client
	err     error
}

var _ ports.ClientsAPI = (*fakeClientsAPI)(nil)

func (f *fakeClientsAPI) List(context.Context) ([]model.Client, error) {
	f.bump("List")
	return f.clients, f.err
}

func (f *fakeClientsAPI) Get(_ context.Context, id int64) (model.Client, error) {
	f.bump("Get")
	return model.Client{ID: id}, f.err
}

func (f *fakeClientsAPI) Create(_ context.Context, req model.CreateClientRequest) (model.Client, error) {
	f.bump("Create")
	return model.Client{ID: 100, Name: req.Name}, f.err
}

func (f *fakeClientsAPI) Update(_ context.Context, id int64, req model.CreateClientRequest) (model.Client, error) {
	f.bump("Update")
	return model.Client{ID: id, Name: req.Name}, f.err
}

func (f *fakeClientsAPI) Delete(_ context.Context, _ int64) error {
	f.bump("Delete")
	return f.err
}

type fakeTasksAPI struct {
	callCounter
	tasks []model.Task
	err   error
}

var _ ports.TasksAPI = (*fakeTasksAPI)(nil)

func (f *fakeTasksAPI) List(context.Context) ([]model.Task, error) {
	f.bump("List")
	return f.tasks, f.err
}

func (f *fakeTasksAPI) Get(_ context.Context, id int64) (model.Task, error) {
	f.bump("Get")
	for _, t := range f.tasks {
		if t.ID == id {
			return t, f.err
		}
	}
	return model.Task{ID: id}, f.err
}

func (f *fakeTasksAPI) ListByUser(_ context.Context, userID int64) ([]model.Task, error) {
	f.bump("ListByUser")
	var out []model.Task
	for _, t := range f.tasks {
		if t.AssignedToUser(userID) {
			out = append(out, t)
		}
	}
	return out, f.err
}

func (f *fakeTasksAPI) ListByProject(_ context.Context, projectID int64) ([]model.Task, error) {
	f.bump("ListByProject")
	var out []model.Task
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, f.err
}

func (f *fakeTasksAPI) Create(_ context.Context, req model.CreateTaskRequest) (model.Task, error) {
	f.bump("Create")
	return model.Task{ID: 100, Title: req.Title, ProjectID: req.ProjectID}, f.err
}

func (f *fakeTasksAPI) Update(_ context.Context, id int64, req model.UpdateTaskRequest) (model.Task, error) {
	f.bump("Update")
	return model.Task{ID: id, Title: req.Title}, f.err
}

func (f *fakeTasksAPI) UpdateStatus(_ context.Context, id int64, status model.TaskStatus) (model.Task, error) {
	f.bump("UpdateStatus")
	return model.Task{ID: id, Status: status}, f.err
}

func (f *fakeTasksAPI) Delete(_ context.Context, _ int64) error {
	f.bump("Delete")
	return f.err
}

type fakeAssignmentsAPI struct {
	callCounter
	assignments []model.Assignment
	members     map[int64][]model.UserSummary
	err         error
}

var _ ports.AssignmentsAPI = (*fakeAssignmentsAPI)(nil)

func (f *fakeAssignmentsAPI) List(context.Context) ([]model.Assignment, error) {
	f.bump("List")
	return f.assignments, f.err
}

func (f *fakeAssignmentsAPI) ListProjectMembers(_ context.Context, projectID int64) ([]model.UserSummary, error) {
	f.bump("ListProjectMembers")
	return f.members[projectID], f.err
}

func (f *fakeAssignmentsAPI) Create(_ context.Context, req model.CreateAssignmentRequest) (model.Assignment, error) {
	f.bump("Create")
	return model.Assignment{ID: 100, UserID: req.UserID, ProjectID: req.ProjectID}, f.err
}

func (f *fakeAssignmentsAPI) Delete(_ context.Context, _ int64) error {
	f.bump("Delete")
	return f.err
}

type fakeRegistrationAPI struct {
	callCounter
	err error
}

var _ ports.RegistrationAPI = (*fakeRegistrationAPI)(nil)

func (f *fakeRegistrationAPI) Register(_ context.Context, _ model.RegisterUserRequest) error {
	f.bump("Register")
	return f.err
}
