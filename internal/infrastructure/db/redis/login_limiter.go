package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per username using a
// fixed-window counter in Redis. Key format: login_fail:<username>
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive limits fall back to the defaults.
func NewLoginLimiter(client *redis.Client, maxFailures int64, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures, window: window}
}

// Allow reports whether a login attempt for username may proceed.
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n < l.maxFailures, nil
}

// RecordFailure counts a failed attempt. The window starts at the first
// failure and is not extended by later ones.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_fail:" + username
}
