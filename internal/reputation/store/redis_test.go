package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	id "github.com/Veselin15/FactNode/pkg/domain"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client)
}

func TestRedisAddScore(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t)
	userID := id.NewUserID()

	total, err := store.AddScore(ctx, userID, 10)
	require.NoError(t, err)
	require.Equal(t, 10, total)

	total, err = store.AddScore(ctx, userID, -2)
	require.NoError(t, err)
	require.Equal(t, 8, total)

	got, err := store.Get(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 8, got)
}

func TestRedisGetUnknownUser(t *testing.T) {
	store := newRedisStore(t)

	_, err := store.Get(context.Background(), id.NewUserID())
	require.ErrorIs(t, err, ErrNotFound)
}
