package ratelimit

import (
	"context"
	"fmt"
	"time"

	"recruitme/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Result of a rate limit check. RetryAfter is only meaningful when
// Allowed is false.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter is a fixed-window request counter. Implementations must fail
// open: if the counting backend is unreachable the request is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) Result
}

type redisLimiter struct {
	client *redis.Client
	logger *logger.Logger
}

func NewRedisLimiter(client *redis.Client, log *logger.Logger) Limiter {
	return &redisLimiter{client: client, logger: log}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) Result {
	redisKey := fmt.Sprintf("rate_limit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open: availability over strictness.
		l.logger.Warn("Rate limit check failed for %s, allowing request: %v", key, err)
		return Result{Allowed: true}
	}

	if count == 1 {
		l.client.Expire(ctx, redisKey, window)
	}

	if count > int64(limit) {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return Result{Allowed: false, RetryAfter: ttl}
	}

	return Result{Allowed: true}
}

type noopLimiter struct{}

// NewNoopLimiter returns a limiter that allows everything. Wired in
// when no redis host is configured.
func NewNoopLimiter() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) Result {
	return Result{Allowed: true}
}
