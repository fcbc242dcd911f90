//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Veselin15/FactNode/internal/reputation/store"
	id "github.com/Veselin15/FactNode/pkg/domain"
	"github.com/Veselin15/FactNode/pkg/testutil/containers"
)

func TestRedisStoreAgainstRealRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.GetManager().GetRedis(t)
	require.NoError(t, rc.FlushAll(ctx))

	s := store.NewRedis(rc.Client)
	userID := id.NewUserID()

	total, err := s.AddScore(ctx, userID, 10)
	require.NoError(t, err)
	require.Equal(t, 10, total)

	total, err = s.AddScore(ctx, userID, -2)
	require.NoError(t, err)
	require.Equal(t, 8, total)

	got, err := s.Get(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 8, got)

	_, err = s.Get(ctx, id.NewUserID())
	require.ErrorIs(t, err, store.ErrNotFound)
}
