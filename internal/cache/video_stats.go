package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix = "video:stats:"

	// DefaultStatsTTL 统计缓存默认过期时间
	DefaultStatsTTL = 5 * time.Minute
)

// VideoStats 单个视频的聚合计数
type VideoStats struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Comments int64 `json:"comments"`
}

// VideoStatsCache 视频统计缓存。读不到或 Redis 不可用时调用方回源数据库，
// 本进程的互动写入同步失效，其他实例经 Kafka 事件由 worker 失效。
type VideoStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVideoStatsCache 创建 VideoStatsCache
func NewVideoStatsCache(client *redis.Client, ttl time.Duration) *VideoStatsCache {
	return &VideoStatsCache{client: client, ttl: ttl}
}

func statsKey(videoID int64) string {
	return fmt.Sprintf("%s%d", statsKeyPrefix, videoID)
}

// Get 读取缓存，未命中或异常返回 false
func (c *VideoStatsCache) Get(ctx context.Context, videoID int64) (*VideoStats, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, statsKey(videoID)).Bytes()
	if err != nil {
		return nil, false
	}

	var stats VideoStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// Set 写入缓存，失败静默（缓存是旁路，不影响请求）
func (c *VideoStatsCache) Set(ctx context.Context, videoID int64, stats *VideoStats) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.client.Set(ctx, statsKey(videoID), raw, c.ttl)
}

// Invalidate 使指定视频的统计缓存失效
func (c *VideoStatsCache) Invalidate(ctx context.Context, videoID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, statsKey(videoID)).Err()
}
