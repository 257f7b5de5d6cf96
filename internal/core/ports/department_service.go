package ports

import (
	"context"

	"github.com/userdept/admin-system/internal/core/domain"
)

// CreateDepartmentInput carries all data needed to create a department.
type CreateDepartmentInput struct {
	Code        string
	Name        string
	ParentCode  string
	Description string
	Actor       string
}

// UpdateDepartmentInput carries a full edit of an existing department.
// Code is immutable and therefore absent.
type UpdateDepartmentInput struct {
	Name        string
	ParentCode  string
	Description string
	Actor       string
}

// ListDepartmentsResult is returned by ListDepartments.
type ListDepartmentsResult struct {
	Items   []*domain.Department
	Total   int64
	Page    int
	PerPage int
}

// DepartmentService defines use-case operations for the department hierarchy.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
	GetDepartment(ctx context.Context, id string) (*domain.Department, error)
	ListDepartments(ctx context.Context, filter ListDepartmentsFilter) (*ListDepartmentsResult, error)
	// GetTree returns the full hierarchy as a forest of root departments.
	GetTree(ctx context.Context) ([]*domain.Department, error)
	UpdateDepartment(ctx context.Context, id string, input UpdateDepartmentInput) (*domain.Department, error)
	// DeleteDepartment removes a department. Deletion is rejected while child
	// departments still reference its code.
	DeleteDepartment(ctx context.Context, id, actor string) error
	// ListUsersInDepartment returns the users associated with the code.
	ListUsersInDepartment(ctx context.Context, code string) ([]*domain.User, error)
}
