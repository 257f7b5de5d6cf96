// Package redis connects to the Redis instance backing the token blacklist.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping when the caller sets no Timeout.
const connectTimeout = 5 * time.Second

// Config holds the connection settings for the revocation store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return connectTimeout
}

// Connect opens a client and pings it so an unreachable Redis surfaces at
// startup instead of on the first logout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
