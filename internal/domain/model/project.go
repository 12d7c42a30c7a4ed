package model

import (
	"strings"
	"time"
)

// ProjectStatus mirrors the backend's project status enum, including the
// embedded spaces in the wire values.
type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "Not Started"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

// Valid reports whether the project status is supported.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseProjectStatus normalizes a status string and reports whether it is
// supported. Matching ignores case and surrounding whitespace.
func ParseProjectStatus(value string) (ProjectStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "not started":
		return ProjectStatusNotStarted, true
	case "in progress":
		return ProjectStatusInProgress, true
	case "completed":
		return ProjectStatusCompleted, true
	default:
		return "", false
	}
}

// Project is a client engagement tracked on the dashboard.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	ClientID    int64         `json:"client_id"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CreateProjectRequest carries the fields accepted on project creation.
type CreateProjectRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
	ClientID    int64         `json:"client_id"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
}

// UpdateProjectRequest carries the fields accepted on project update.
type UpdateProjectRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
	ClientID    int64         `json:"client_id"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
}
