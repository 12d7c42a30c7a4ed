package service

import (
	"context"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

// DashboardService serves the landing-page aggregates. Any authenticated
// role may read them; anonymous visitors are bounced by the guard before
// this layer.
type DashboardService struct {
	sessions *SessionManager
	api      ports.DashboardAPI
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(sessions *SessionManager, api ports.DashboardAPI) *DashboardService {
	return &DashboardService{sessions: sessions, api: api}
}

// Stats returns the aggregate counters.
func (s *DashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	if _, err := requireAuthenticated(s.sessions.Current()); err != nil {
		return model.DashboardStats{}, err
	}
	return s.api.Stats(ctx)
}

// RecentActivity returns the recent-activity feed.
func (s *DashboardService) RecentActivity(ctx context.Context) ([]model.ActivityEntry, error) {
	if _, err := requireAuthenticated(s.sessions.Current()); err != nil {
		return nil, err
	}
	return s.api.RecentActivity(ctx)
}
