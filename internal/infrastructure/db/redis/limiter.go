package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const attemptWindow = 15 * time.Minute

// LoginLimiter counts failed login attempts per client id in Redis.
// Key format: login_attempts:<client_id>, expiring after attemptWindow.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts}
}

// Allow reports whether the client is still within its failure budget.
func (l *LoginLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(clientID)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n < l.maxAttempts, nil
}

// RecordFailure counts one failed attempt. The window starts at the first
// failure and is not extended by later ones.
func (l *LoginLimiter) RecordFailure(ctx context.Context, clientID string) error {
	key := l.key(clientID)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(clientID string) string {
	return fmt.Sprintf("login_attempts:%s", clientID)
}
