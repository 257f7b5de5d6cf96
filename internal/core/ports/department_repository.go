package ports

import (
	"context"

	"github.com/userdept/admin-system/internal/core/domain"
)

// ListDepartmentsFilter carries all query parameters for listing departments.
type ListDepartmentsFilter struct {
	Search  string // optional: partial match on code, name or description
	Page    int    // 1-based
	PerPage int    // max rows per page (capped by the service)
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	FindByCode(ctx context.Context, code string) (*domain.Department, error)
	// List returns a page of departments matching filter and the total count.
	List(ctx context.Context, filter ListDepartmentsFilter) ([]*domain.Department, int64, error)
	// ListAll returns every department in insertion order, for tree building
	// and ancestor-chain validation.
	ListAll(ctx context.Context) ([]*domain.Department, error)
	// HasChildren reports whether any department names code as its parent.
	HasChildren(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
