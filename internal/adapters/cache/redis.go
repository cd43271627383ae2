package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"scanpoints/internal/domain"
)

// DefaultLeaderboardKey prefixes the Redis keys of the leaderboard cache:
// <key>:gen holds the generation counter, <key>:<n> the board of generation n.
const DefaultLeaderboardKey = "scanpoints:leaderboard"

// redisStore is the subset of *redis.Client used by the cache.
type redisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type redisLeaderboardCache struct {
	store redisStore
	key   string
}

// NewRedisLeaderboardCache stores the computed leaderboard as JSON under key.
func NewRedisLeaderboardCache(client *redis.Client, key string) domain.LeaderboardCache {
	return newRedisLeaderboardCache(client, key)
}

func newRedisLeaderboardCache(store redisStore, key string) *redisLeaderboardCache {
	if key == "" {
		key = DefaultLeaderboardKey
	}
	return &redisLeaderboardCache{store: store, key: key}
}

func (c *redisLeaderboardCache) generationKey() string {
	return c.key + ":gen"
}

func (c *redisLeaderboardCache) boardKey(generation int64) string {
	return fmt.Sprintf("%s:%d", c.key, generation)
}

// Generation returns 0 until the first Invalidate.
func (c *redisLeaderboardCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.store.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get leaderboard generation: %w", err)
	}
	return gen, nil
}

func (c *redisLeaderboardCache) Get(ctx context.Context, generation int64) ([]*domain.LeaderboardRow, bool, error) {
	raw, err := c.store.Get(ctx, c.boardKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get leaderboard: %w", err)
	}
	var rows []*domain.LeaderboardRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, fmt.Errorf("decode cached leaderboard: %w", err)
	}
	return rows, true, nil
}

func (c *redisLeaderboardCache) Set(ctx context.Context, generation int64, rows []*domain.LeaderboardRow, ttl time.Duration) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := c.store.Set(ctx, c.boardKey(generation), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set leaderboard: %w", err)
	}
	return nil
}

// Invalidate bumps the generation. Boards of older generations expire by TTL.
func (c *redisLeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.store.Incr(ctx, c.generationKey()).Err(); err != nil {
		return fmt.Errorf("redis incr leaderboard generation: %w", err)
	}
	return nil
}
