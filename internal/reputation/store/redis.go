package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

// RedisStore keeps reputation totals in Redis. INCRBY gives the same
// atomic-add guarantee the Postgres store gets from row locking, which
// makes this a drop-in choice for low-latency deployments.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedis constructs a Redis-backed reputation store.
func NewRedis(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func reputationKey(userID id.UserID) string {
	return "reputation:" + userID.String()
}

func (s *RedisStore) AddScore(ctx context.Context, userID id.UserID, delta int) (int, error) {
	total, err := s.client.IncrBy(ctx, reputationKey(userID), int64(delta)).Result()
	if err != nil {
		return 0, fmt.Errorf("incr reputation score: %w", err)
	}
	return int(total), nil
}

func (s *RedisStore) Get(ctx context.Context, userID id.UserID) (int, error) {
	total, err := s.client.Get(ctx, reputationKey(userID)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get reputation score: %w", err)
	}
	return total, nil
}
