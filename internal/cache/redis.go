// Package cache provides the Redis client backing request throttling.
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"tribune/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// errorCountingHook feeds command failures into the Redis error counter.
// A nil reply is a cache miss, not a failure.
type errorCountingHook struct{}

func (errorCountingHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (errorCountingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (errorCountingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// Connect dials Redis at addr, given either as host:port or as a redis:// URL.
// Redis only backs throttling here, so an unreachable server degrades to a
// nil client instead of failing startup.
func Connect(addr string) *redis.Client {
	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without throttling",
				"addr", addr, "error", err)
			return nil
		}
		opts = parsed
	}

	client := redis.NewClient(opts)
	client.AddHook(errorCountingHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("redis unreachable, continuing without throttling",
			"addr", addr, "error", err)
		return nil
	}

	middleware.Logger.Info("redis connected")
	return client
}
