package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist stores revoked bearer tokens until their natural expiry.
// Tokens are keyed by SHA-256 digest so raw credentials never land in Redis.
// Key format: blacklist:<sha256(token)>
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a TokenBlacklist wrapping the given Redis client.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke records the token as revoked for ttl.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, b.key(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been revoked.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}

func (b *TokenBlacklist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "blacklist:" + hex.EncodeToString(sum[:])
}
