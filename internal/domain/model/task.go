package model

import (
	"strings"
	"time"
)

// TaskStatus mirrors the backend's task status enum.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// Valid reports whether the task status is supported.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// ParseTaskStatus normalizes a status string and reports whether it is
// supported. Matching ignores case and surrounding whitespace.
func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "to do", "todo":
		return TaskStatusToDo, true
	case "in progress":
		return TaskStatusInProgress, true
	case "done":
		return TaskStatusDone, true
	default:
		return "", false
	}
}

// Task is a unit of work inside a project, optionally assigned to a user.
// AssignedTo is nil for unassigned tasks.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	ProjectID   int64      `json:"project_id"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AssignedToUser reports whether the task is assigned to the given user.
func (t Task) AssignedToUser(userID int64) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}

// CreateTaskRequest carries the fields accepted on task creation.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	ProjectID   int64      `json:"project_id"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest carries the fields accepted on task update.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
