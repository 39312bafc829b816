package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return server, NewRedisStore(client, "shop:")
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	server, s := setupTestRedis(t)

	_, err := s.Get(ctx, "compareList")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "compareList", []byte(`[{"id":4}]`)))
	assert.True(t, server.Exists("shop:compareList"))

	got, err := s.Get(ctx, "compareList")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":4}]`, string(got))

	require.NoError(t, s.Delete(ctx, "compareList"))
	assert.False(t, server.Exists("shop:compareList"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	server, s := setupTestRedis(t)
	server.Close()

	_, err := s.Get(ctx, "cart")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	got := LoadJSON(ctx, s, "cart", []int{})
	assert.Empty(t, got)
}
