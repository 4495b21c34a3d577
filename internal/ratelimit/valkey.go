// valkey.go provides a Valkey (Redis-compatible) backed Store for
// deployments running more than one instance. INCR is atomic on the
// server, so concurrent submissions from the same client cannot both
// read a stale count the way the in-memory store allows.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces rate-limit counters in Valkey.
const keyPrefix = "contact:rl:"

// ValkeyStore counts submissions in Valkey with per-key expiry.
type ValkeyStore struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewValkeyStore creates a store allowing max submissions per window,
// backed by the given client.
func NewValkeyStore(client *redis.Client, max int, window time.Duration) *ValkeyStore {
	return &ValkeyStore{client: client, max: max, window: window}
}

// Connect creates a Valkey client and verifies the connection with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}

// Allow implements Store. The counter is incremented atomically; the
// first hit in a window sets the expiry. Backend errors fail open —
// an unreachable cache must not take contact intake down with it.
func (s *ValkeyStore) Allow(ctx context.Context, key string) (Result, error) {
	k := keyPrefix + key

	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		slog.Warn("rate limit backend unreachable, allowing", "key", key, "error", err)
		return Result{Allowed: true, Remaining: s.max - 1, ResetAt: time.Now().Add(s.window)}, nil
	}

	if count == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			slog.Warn("rate limit expire failed", "key", key, "error", err)
		}
	}

	resetAt := time.Now().Add(s.window)
	if ttl, err := s.client.TTL(ctx, k).Result(); err == nil && ttl > 0 {
		resetAt = time.Now().Add(ttl)
	}

	remaining := s.max - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: count <= int64(s.max), Remaining: remaining, ResetAt: resetAt}, nil
}
