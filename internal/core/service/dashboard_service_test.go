package service

import (
	"context"
	"testing"

	"github.com/userdept/admin-system/internal/core/domain"
)

func TestDashboardService_Stats(t *testing.T) {
	userRepo := newStubUserRepo()
	deptRepo := newStubDeptRepo()

	_, _ = userRepo.Create(context.Background(), &domain.User{Username: "a", Status: domain.StatusEnabled})
	_, _ = userRepo.Create(context.Background(), &domain.User{Username: "b", Status: domain.StatusDisabled})
	_, _ = deptRepo.Create(context.Background(), &domain.Department{Code: "D1"})

	svc := NewDashboardService(userRepo, deptRepo)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.UserCount != 2 || stats.DepartmentCount != 1 || stats.ActiveUserCount != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
