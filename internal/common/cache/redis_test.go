// Package cache Redis 缓存单元测试
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

type testPayload struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func TestSetAndGetJSON(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()

	in := &testPayload{Name: "summary", Count: 42}
	require.NoError(t, SetJSON(ctx, rdb, "test:key", in, time.Minute))

	var out testPayload
	require.NoError(t, GetJSON(ctx, rdb, "test:key", &out))
	assert.Equal(t, *in, out)
}

func TestGetJSON_Miss(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()

	var out testPayload
	err := GetJSON(ctx, rdb, "missing:key", &out)
	require.Error(t, err)
	assert.True(t, IsMiss(err))
}

func TestDelete(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, rdb, "test:key", &testPayload{Name: "x"}, time.Minute))
	require.NoError(t, Delete(ctx, rdb, "test:key"))

	var out testPayload
	assert.True(t, IsMiss(GetJSON(ctx, rdb, "test:key", &out)))
}

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.False(t, IsMiss(errors.New("boom")))
	assert.False(t, IsMiss(nil))
}
