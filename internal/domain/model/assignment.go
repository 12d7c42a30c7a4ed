package model

import "time"

// Assignment links a user to a project (many-to-many membership row).
type Assignment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAssignmentRequest carries the fields accepted on assignment creation.
type CreateAssignmentRequest struct {
	UserID    int64 `json:"user_id"`
	ProjectID int64 `json:"project_id"`
}

// AssignmentSet answers membership questions over a user's assignments.
type AssignmentSet []Assignment

// ProjectIDs returns the distinct project ids in the set, in first-seen order.
func (s AssignmentSet) ProjectIDs() []int64 {
	seen := make(map[int64]struct{}, len(s))
	ids := make([]int64, 0, len(s))
	for _, a := range s {
		if _, ok := seen[a.ProjectID]; ok {
			continue
		}
		seen[a.ProjectID] = struct{}{}
		ids = append(ids, a.ProjectID)
	}
	return ids
}

// HasProject reports whether any assignment in the set references the project.
func (s AssignmentSet) HasProject(projectID int64) bool {
	for _, a := range s {
		if a.ProjectID == projectID {
			return true
		}
	}
	return false
}
