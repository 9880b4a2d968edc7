package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/graphblog/api/internal/config"
)

// LoginLimiter throttles login attempts per email using Redis
type LoginLimiter interface {
	// Allow reports whether another login attempt is permitted
	Allow(ctx context.Context, email string) (bool, error)

	// RecordFailure counts a failed attempt within the current window
	RecordFailure(ctx context.Context, email string) error

	// Reset clears the counter after a successful login
	Reset(ctx context.Context, email string) error

	// Close closes the Redis connection
	Close() error
}

type redisLoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewLoginLimiter creates a new Redis-based login limiter
func NewLoginLimiter(cfg *config.Config, logger *slog.Logger) (LoginLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [LoginLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [LoginLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisLoginLimiter{
		client: client,
		limit:  cfg.LoginAttemptLimit,
		window: time.Duration(cfg.LoginAttemptWindow) * time.Second,
		logger: logger,
	}, nil
}

// attemptKey generates the Redis key for the failed-attempt counter.
// Format: login:attempts:{email}
func attemptKey(email string) string {
	return "login:attempts:" + strings.ToLower(email)
}

func (r *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if r.limit <= 0 {
		return true, nil
	}

	count, err := r.client.Get(ctx, attemptKey(email)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		r.logger.Error("❌ [LoginLimiter] Failed to get attempt count", "error", err)
		// On error, allow the request but log it
		return true, err
	}

	return count < r.limit, nil
}

func (r *redisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := attemptKey(email)

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [LoginLimiter] Failed to record attempt", "error", err)
		return err
	}

	return nil
}

func (r *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	return r.client.Del(ctx, attemptKey(email)).Err()
}

func (r *redisLoginLimiter) Close() error {
	return r.client.Close()
}

// NoOpLoginLimiter always allows login attempts. Used when Redis is not
// available.
type NoOpLoginLimiter struct {
	logger *slog.Logger
}

// NewNoOpLoginLimiter creates a no-op login limiter
func NewNoOpLoginLimiter(logger *slog.Logger) LoginLimiter {
	logger.Warn("⚠️ [LoginLimiter] Using no-op login limiter - login throttling is disabled")
	return &NoOpLoginLimiter{logger: logger}
}

func (r *NoOpLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	return true, nil
}

func (r *NoOpLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	return nil
}

func (r *NoOpLoginLimiter) Reset(ctx context.Context, email string) error {
	return nil
}

func (r *NoOpLoginLimiter) Close() error {
	return nil
}
