// Package quota enforces the per-user match quota consulted before a
// connection may enter matchmaking.
package quota

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// MatchLimit is the number of matches a user may consume per accounting
// window before matchmaking is denied.
const MatchLimit = 20

// windowTTL keeps counter keys around long enough to outlive their day.
const windowTTL = 48 * time.Hour

// Gate answers how many matches a user has consumed in the current
// window and records new ones. GetUserQuota returns -1 alongside the
// error when the lookup fails.
type Gate interface {
	GetUserQuota(username string) (int, error)
	UpdateUserQuota(username string) error
}

// RedisGate implements Gate on Redis counters. The accounting window is
// the current UTC day: each user's count lives under a per-day key that
// expires on its own, so quotas reset at midnight UTC.
type RedisGate struct {
	Redis *redis.Client
	Ctx   context.Context
}

// NewRedisGate creates a Gate backed by the given Redis client.
func NewRedisGate(rdb *redis.Client) *RedisGate {
	return &RedisGate{Redis: rdb, Ctx: context.Background()}
}

func quotaKey(username string) string {
	return "quota:" + username + ":" + time.Now().UTC().Format("2006-01-02")
}

// GetUserQuota returns the user's match count for the current window.
func (g *RedisGate) GetUserQuota(username string) (int, error) {
	val, err := g.Redis.Get(g.Ctx, quotaKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return -1, err
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return -1, err
	}
	return count, nil
}

// UpdateUserQuota records one more match for the user.
func (g *RedisGate) UpdateUserQuota(username string) error {
	key := quotaKey(username)
	pipe := g.Redis.TxPipeline()
	pipe.Incr(g.Ctx, key)
	pipe.Expire(g.Ctx, key, windowTTL)
	_, err := pipe.Exec(g.Ctx)
	return err
}
