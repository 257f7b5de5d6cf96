package ports

import (
	"context"

	"github.com/userdept/admin-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new account.
// Password is mandatory at creation time.
type CreateUserInput struct {
	Username        string
	Password        string
	Realname        string
	Email           string
	Mobile          string
	Enabled         bool
	DepartmentCodes []string
	Actor           string
}

// UpdateUserInput carries a full edit of an existing account. Username is
// immutable and therefore absent. Password is optional: empty means keep the
// current credential.
type UpdateUserInput struct {
	Password        string
	Realname        string
	Email           string
	Mobile          string
	Enabled         bool
	DepartmentCodes []string
	Actor           string
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items   []*domain.User
	Total   int64
	Page    int
	PerPage int
}

// UserService defines use-case operations for account management.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id, actor string) error
	// SetUserStatus toggles the enabled flag independently of a full edit.
	SetUserStatus(ctx context.Context, id string, enabled bool, actor string) error
	// ResetPassword replaces the credential with a server-generated one and
	// returns the plaintext exactly once.
	ResetPassword(ctx context.Context, id, actor string) (string, error)
}
