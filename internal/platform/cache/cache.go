// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache implements a JSON read-through cache on top of Redis.

It is only meant for data that never changes at runtime (reference catalogs),
so entries expire by TTL and are never explicitly invalidated. Redis failures
are logged and the loader is used instead: the cache can slow a request down
but never fail it.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// JSONCache stores JSON-encoded values under a common key prefix.
type JSONCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a [JSONCache]. A non-positive ttl disables expiry.
func New(client redis.Cmdable, prefix string, ttl time.Duration, logger *slog.Logger) *JSONCache {
	if ttl < 0 {
		ttl = 0
	}
	return &JSONCache{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

// Key returns the fully qualified Redis key for name.
func (c *JSONCache) Key(name string) string {
	return c.prefix + name
}

// Get decodes the entry stored under name into target.
//
// Returns false with a nil error on a cache miss.
func (c *JSONCache) Get(ctx context.Context, name string, target any) (bool, error) {
	raw, err := c.client.Get(ctx, c.Key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache_get_failed: %w", err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("cache_decode_failed: %w", err)
	}

	return true, nil
}

// Set stores value under name with the configured TTL.
func (c *JSONCache) Set(ctx context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache_encode_failed: %w", err)
	}

	if err := c.client.Set(ctx, c.Key(name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache_set_failed: %w", err)
	}

	return nil
}

// Fetch returns the cached value for name or calls load and caches its result.
//
// Errors from load are returned as-is and nothing is cached for them.
func Fetch[T any](ctx context.Context, c *JSONCache, name string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, name, &cached)
	if err != nil {
		c.logger.WarnContext(ctx, "cache_read_degraded", slog.String("key", c.Key(name)), slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, name, value); err != nil {
		c.logger.WarnContext(ctx, "cache_write_degraded", slog.String("key", c.Key(name)), slog.Any("error", err))
	}

	return value, nil
}
