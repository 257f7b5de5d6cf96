package ports

import (
	"context"

	"github.com/userdept/admin-system/internal/core/domain"
)

// ListUsersFilter carries all query parameters for listing users.
type ListUsersFilter struct {
	Query   string // optional: partial match on username, realname or mobile
	Page    int    // 1-based
	PerPage int    // max rows per page (capped by the service)
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// ListByDepartment returns every user associated with the department code.
	ListByDepartment(ctx context.Context, code string) ([]*domain.User, error)
	// RemoveDepartmentCode drops the code from every user that carries it.
	RemoveDepartmentCode(ctx context.Context, code string) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountEnabled(ctx context.Context) (int64, error)
}
