package model

import "time"

// DashboardStats is the aggregate counters block on the landing page.
type DashboardStats struct {
	TotalClients   int `json:"total_clients"`
	ActiveProjects int `json:"active_projects"`
	CompletedTasks int `json:"completed_tasks"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
