package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/hasunakalanka/Forma.Ai/internal/config"
	httpmiddleware "github.com/hasunakalanka/Forma.Ai/internal/http/middleware"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// IntakeLimiter is the submission rate limiter plus its teardown.
type IntakeLimiter struct {
	httpmiddleware.Limiter
	Backend string
	close   func()
}

// Close releases the limiter's background resources.
func (l *IntakeLimiter) Close() {
	if l != nil && l.close != nil {
		l.close()
	}
}

// BuildIntakeLimiter shares counters through Redis when a client is
// available and falls back to a per-process token bucket otherwise.
func BuildIntakeLimiter(cfg *appconfig.Config, redisClient *redis.Client) *IntakeLimiter {
	if redisClient != nil {
		return &IntakeLimiter{
			Limiter: httpmiddleware.NewRedisRateLimiter(redisClient, cfg.RateLimitRPS, cfg.RateLimitBurst),
			Backend: "redis",
		}
	}
	mem := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	return &IntakeLimiter{Limiter: mem, Backend: "memory", close: mem.Close}
}
