package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window limiter shared by every API replica.
type RedisRateLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisRateLimiter allows burst requests per window, where the window
// is how long the token bucket would take to refill burst tokens at rate.
func NewRedisRateLimiter(client redis.Cmdable, rate float64, burst int) *RedisRateLimiter {
	if burst < 1 {
		burst = 1
	}
	window := time.Minute
	if rate > 0 {
		window = time.Duration(math.Ceil(float64(burst)/rate)) * time.Second
	}
	return &RedisRateLimiter{
		client: client,
		prefix: "forma:ratelimit:",
		limit:  int64(burst),
		window: window,
	}
}

// Allow counts the request in the current window for ip. INCR and TTL go
// out in one round trip; a key left without expiry (a failed EXPIRE on an
// earlier call) gets its window re-applied so it cannot block forever.
func (l *RedisRateLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := l.prefix + ip
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	}); err != nil {
		return false, fmt.Errorf("ratelimit: incr: %w", err)
	}

	n := incr.Val()
	// TTL reports -1 for a key with no expiry.
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit: expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

var (
	_ Limiter = (*RedisRateLimiter)(nil)
	_ Limiter = (*RateLimiter)(nil)
)
