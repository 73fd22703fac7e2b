package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "auth:denylist:"

// Denylist 已吊销令牌名单。登出时按 jti 写入，TTL 对齐令牌剩余有效期。
type Denylist struct {
	client *redis.Client
}

// NewDenylist 创建 Denylist
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke 吊销令牌
func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistPrefix+jti, 1, ttl).Err()
}

// IsRevoked 检查令牌是否已被吊销。名单不可用时放行，认证仍由签名校验兜底。
func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	if d == nil || d.client == nil {
		return false
	}
	n, err := d.client.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
