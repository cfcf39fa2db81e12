// Package ratelimit throttles credential endpoints through Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

// Limiter decides whether one more attempt under key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// rater is the part of *redis_rate.Limiter this package uses.
type rater interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

var _ rater = (*redis_rate.Limiter)(nil)

// RedisLimiter allows limit attempts per key in every window. Bursts up to
// limit are accepted, then attempts are spread evenly over the window.
type RedisLimiter struct {
	rater  rater
	limit  redis_rate.Limit
	prefix string
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return newRedisLimiter(redis_rate.NewLimiter(rdb), limit, window)
}

func newRedisLimiter(r rater, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rater:  r,
		limit:  redis_rate.Limit{Rate: limit, Burst: limit, Period: window},
		prefix: "storefront:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	res, err := l.rater.Allow(ctx, l.prefix+key, l.limit)
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	out := &Result{Allowed: res.Allowed > 0, Remaining: res.Remaining}
	if !out.Allowed {
		out.RetryAfter = res.RetryAfter
		if out.RetryAfter <= 0 {
			out.RetryAfter = l.limit.Period
		}
	}
	return out, nil
}
