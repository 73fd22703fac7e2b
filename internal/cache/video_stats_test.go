package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

func TestVideoStatsCacheRoundTrip(t *testing.T) {
	client := setupTestRedis(t)
	c := NewVideoStatsCache(client, time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, 1)
	require.False(t, ok)

	stats := &VideoStats{Views: 10, Likes: 3, Dislikes: 1, Comments: 5}
	c.Set(ctx, 1, stats)

	got, ok := c.Get(ctx, 1)
	require.True(t, ok)
	require.Equal(t, stats, got)

	// 不同视频互不串台
	_, ok = c.Get(ctx, 2)
	require.False(t, ok)
}

func TestVideoStatsCacheInvalidate(t *testing.T) {
	client := setupTestRedis(t)
	c := NewVideoStatsCache(client, time.Minute)
	ctx := context.Background()

	c.Set(ctx, 1, &VideoStats{Views: 10})
	require.NoError(t, c.Invalidate(ctx, 1))

	_, ok := c.Get(ctx, 1)
	require.False(t, ok)
}

// 未配置 Redis 时缓存整体退化为未命中
func TestVideoStatsCacheNilSafe(t *testing.T) {
	ctx := context.Background()

	var c *VideoStatsCache
	_, ok := c.Get(ctx, 1)
	require.False(t, ok)
	c.Set(ctx, 1, &VideoStats{Views: 1})
	require.NoError(t, c.Invalidate(ctx, 1))

	c = NewVideoStatsCache(nil, time.Minute)
	_, ok = c.Get(ctx, 1)
	require.False(t, ok)
	require.NoError(t, c.Invalidate(ctx, 1))
}
