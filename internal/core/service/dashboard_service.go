package service

import (
	"context"

	"github.com/userdept/admin-system/internal/core/ports"
)

// DashboardService aggregates the landing-view counters.
type DashboardService struct {
	users ports.UserRepository
	depts ports.DepartmentRepository
}

func NewDashboardService(users ports.UserRepository, depts ports.DepartmentRepository) *DashboardService {
	return &DashboardService{users: users, depts: depts}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	deptCount, err := s.depts.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeCount, err := s.users.CountEnabled(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		UserCount:       userCount,
		DepartmentCount: deptCount,
		ActiveUserCount: activeCount,
	}, nil
}
