// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"folio/internal/middleware"

	"github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "profile:%d"

	// ProfileTTL bounds staleness of cached public profiles.
	ProfileTTL = 5 * time.Minute
)

// Cache wraps a Redis client with JSON cache-aside helpers. A nil Cache (or one
// whose connection failed) degrades to pass-through.
type Cache struct {
	client *redis.Client
}

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// Connect dials Redis at addr and returns the client, or nil if Redis is
// unreachable. The caller decides whether nil is acceptable.
func Connect(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without redis",
				slog.String("addr", addr), slog.String("error", err.Error()))
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("redis unavailable, continuing without cache",
			slog.String("error", err.Error()))
		return nil
	}

	middleware.Logger.Info("redis connected")
	return client
}

// New wraps an existing Redis client. client may be nil.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// ProfileKey returns the cache key for a user's public profile.
func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

// Aside fills dest from the cache when possible, otherwise runs fill and stores
// the result under key. Cache failures are invisible to the caller.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fill func() error) error {
	if c != nil && c.client != nil {
		if b, err := c.client.Get(ctx, key).Bytes(); err == nil {
			if json.Unmarshal(b, dest) == nil {
				return nil
			}
		}
	}

	if err := fill(); err != nil {
		return err
	}

	if c != nil && c.client != nil {
		if b, err := json.Marshal(dest); err == nil {
			c.client.Set(ctx, key, b, ttl)
		}
	}
	return nil
}

// Invalidate removes a key. Safe on a nil Cache.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c != nil && c.client != nil {
		c.client.Del(ctx, key)
	}
}

// InvalidateProfile drops the cached public profile for a user.
func (c *Cache) InvalidateProfile(ctx context.Context, userID uint) {
	c.Invalidate(ctx, ProfileKey(userID))
}
