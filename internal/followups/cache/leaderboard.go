// Package cache provides a redis-backed snapshot cache for the sales
// leaderboard. The leaderboard is a full scan over every source; the
// dashboard polls it, so a short TTL takes the repeated cost off the hot path.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/engine"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "followups:leaderboard"

// Leaderboard caches computed leaderboard snapshots in redis.
type Leaderboard struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewLeaderboard creates a leaderboard cache with the given TTL.
func NewLeaderboard(client *redis.Client, ttl time.Duration, log *logger.Logger) *Leaderboard {
	return &Leaderboard{client: client, ttl: ttl, log: log}
}

// Get returns the cached snapshot, reporting whether one was present.
// Cache failures are logged and treated as a miss; the caller recomputes.
func (c *Leaderboard) Get(ctx context.Context) ([]engine.SalesStat, bool) {
	payload, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Warn("leaderboard cache read failed", "error", err)
		}
		return nil, false
	}

	var stats []engine.SalesStat
	if err := json.Unmarshal(payload, &stats); err != nil {
		if c.log != nil {
			c.log.Warn("leaderboard cache payload invalid", "error", err)
		}
		return nil, false
	}
	return stats, true
}

// Set stores a freshly computed snapshot. Failures are logged, not returned:
// the cache is an optimization, never a source of truth.
func (c *Leaderboard) Set(ctx context.Context, stats []engine.SalesStat) {
	payload, err := json.Marshal(stats)
	if err != nil {
		if c.log != nil {
			c.log.Warn("leaderboard cache marshal failed", "error", err)
		}
		return
	}

	if err := c.client.Set(ctx, leaderboardKey, payload, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warn("leaderboard cache write failed", "error", err)
	}
}

// Invalidate drops the cached snapshot, forcing the next read to recompute.
func (c *Leaderboard) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, leaderboardKey).Err(); err != nil && c.log != nil {
		c.log.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
