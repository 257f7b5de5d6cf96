package ports

import (
	"context"
	"time"

	"github.com/userdept/admin-system/internal/core/domain"
)

// AuthService issues and revokes bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the presented token so it cannot be replayed before expiry.
	Logout(ctx context.Context, token string) error
}

// TokenBlacklist keeps revoked tokens until their natural expiry.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
