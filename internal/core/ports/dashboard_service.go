package ports

import "context"

// DashboardStats aggregates the landing-view counters.
type DashboardStats struct {
	UserCount       int64 `json:"userCount"`
	DepartmentCount int64 `json:"departmentCount"`
	ActiveUserCount int64 `json:"activeUserCount"`
}

// DashboardService exposes aggregate counts for the landing view.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
