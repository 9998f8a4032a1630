// Copyright (c) 2026 Folio. All rights reserved.

package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// # Throttle Backend

// RedisThrottle implements Throttle using a per-IP TTL counter.
//
// # Keying
//
// Each client IP gets a volatile counter under "contact:throttle:<ip>". The
// first hit of a window sets the expiry; subsequent hits only increment, so
// the window is fixed from the first submission rather than sliding.
type RedisThrottle struct {
	client *redis.Client
	window time.Duration
}

// NewRedisThrottle creates a new Redis-backed Throttle with a fixed window.
func NewRedisThrottle(client *redis.Client, window time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, window: window}
}

/*
Hit records one submission attempt for the given IP.

Parameters:
  - context: context.Context
  - ip: string

Returns:
  - int64: Attempts within the current window, this one included
  - time.Duration: Time until the window resets
  - error: Connectivity or execution errors
*/
func (throttle *RedisThrottle) Hit(context context.Context, ip string) (int64, time.Duration, error) {

	key := fmt.Sprintf("contact:throttle:%s", ip)

	count, err := throttle.client.Incr(context, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis_throttle_incr_failed: %w", err)
	}

	// First hit of the window arms the expiry.
	if count == 1 {
		if err := throttle.client.Expire(context, key, throttle.window).Err(); err != nil {
			return 0, 0, fmt.Errorf("redis_throttle_expire_failed: %w", err)
		}
		return count, throttle.window, nil
	}

	remaining, err := throttle.client.TTL(context, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("redis_throttle_ttl_failed: %w", err)
	}

	// A key that lost its expiry (e.g. a crashed EXPIRE) must not throttle
	// forever. Re-arm the window.
	if remaining < 0 {
		if err := throttle.client.Expire(context, key, throttle.window).Err(); err != nil {
			return 0, 0, fmt.Errorf("redis_throttle_expire_failed: %w", err)
		}
		remaining = throttle.window
	}

	return count, remaining, nil
}
