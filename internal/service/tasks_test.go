package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/planboard/planboard/internal/errors"

	"github.com/planboard/planboard/internal/domain/model"
)

func tasksFixture() *fakeTasksAPI {
	mine := int64(4)
	other := int64(9)
	return &fakeTasksAPI{tasks: []model.Task{
		{ID: 1, Title: "Design review", Status: model.TaskStatusToDo, ProjectID: 1, AssignedTo: &mine},
		{ID: 2, Title: "Write docs", Status: model.TaskStatusInProgress, ProjectID: 1, AssignedTo: &other},
		{ID: 3, Title: "Triage", Status: model.TaskStatusToDo, ProjectID: 2},
	}}
}

func TestTasks_AdminListsAll(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, adminIdentity()), api)

	tasks, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Equal(t, 1, api.count("List"))
	assert.Equal(t, 0, api.count("ListByUser"))
}

func TestTasks_TeamMemberListsOnlyOwn(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, memberIdentity()), api)

	tasks, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, 0, api.count("List"))
	assert.Equal(t, 1, api.count("ListByUser"))
}

func TestTasks_TeamMemberMovesOwnTask(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, memberIdentity()), api)

	task, err := svc.UpdateStatus(context.Background(), 1, model.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDone, task.Status)
	assert.Equal(t, 1, api.count("UpdateStatus"))
}

func TestTasks_TeamMemberCannotMoveOthersTask(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, memberIdentity()), api)

	_, err := svc.UpdateStatus(context.Background(), 2, model.TaskStatusDone)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, "You can only update tasks assigned to you", apperrors.UserMessage(err))
	assert.Equal(t, 0, api.count("UpdateStatus"), "the write must never go out")
}

func TestTasks_TeamMemberCannotMoveUnassignedTask(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, memberIdentity()), api)

	_, err := svc.UpdateStatus(context.Background(), 3, model.TaskStatusInProgress)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, 0, api.count("UpdateStatus"))
}

func TestTasks_ManagerMovesAnyTask(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, managerIdentity()), api)

	_, err := svc.UpdateStatus(context.Background(), 2, model.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("UpdateStatus"))
}

func TestTasks_TeamMemberCannotCreateOrDelete(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, memberIdentity()), api)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTaskRequest{Title: "New", ProjectID: 1})
	assert.True(t, apperrors.IsAuth(err))

	err = svc.Delete(ctx, 1)
	assert.True(t, apperrors.IsAuth(err))

	assert.Equal(t, 0, api.total())
}

func TestTasks_ManagerCannotDelete(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, managerIdentity()), api)

	err := svc.Delete(context.Background(), 1)
	assert.True(t, apperrors.IsAuth(err))
	assert.Equal(t, 0, api.count("Delete"))
}

func TestTasks_CreateValidation(t *testing.T) {
	api := tasksFixture()
	svc := NewTasksService(sessionsWith(t, managerIdentity()), api)
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateTaskRequest{Title: " ", ProjectID: 1})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "title", apperrors.GetField(err))

	_, err = svc.Create(ctx, model.CreateTaskRequest{Title: "New"})
	assert.Equal(t, "project_id", apperrors.GetField(err))

	_, err = svc.Create(ctx, model.CreateTaskRequest{Title: "New", ProjectID: 1, Status: "Weird"})
	assert.Equal(t, "status", apperrors.GetField(err))

	_, err = svc.UpdateStatus(ctx, 1, "Weird")
	assert.True(t, apperrors.IsValidation(err))

	assert.Equal(t, 0, api.total())
}
