package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle is a fixed-window rate limiter for login attempts, keyed per
// email. Key format: login_attempts:<email>:<window_start>
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a LoginThrottle allowing limit attempts per
// window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow records one attempt for email and reports whether it is within the
// window limit.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)

	pipe := t.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("login throttle: %w", err)
	}

	return incr.Val() <= int64(t.limit), nil
}

func (t *LoginThrottle) key(email string) string {
	windowStart := time.Now().Truncate(t.window).Unix()
	return fmt.Sprintf("login_attempts:%s:%d", email, windowStart)
}
