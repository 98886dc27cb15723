package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zhangwei/bookshop/internal/domain/token"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// BlacklistCache Token黑名单缓存
// 设计说明：
// 1. 数据库是权威来源,这里只缓存"已吊销"的肯定结论
// 2. Key设计:blacklist:{jti},TTL为Token剩余有效期,过期自动清除
// 3. 缓存miss不代表未吊销,调用方需回源数据库
type BlacklistCache struct {
	client *redis.Client
}

// NewBlacklistCache 创建黑名单缓存
// 返回domain层的Cache接口(依赖倒置)
func NewBlacklistCache(client *redis.Client) token.Cache {
	return &BlacklistCache{client: client}
}

// MarkBlacklisted 缓存吊销标记
func (c *BlacklistCache) MarkBlacklisted(ctx context.Context, jti string, ttl time.Duration) error {
	key := blacklistKey(jti)
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入黑名单缓存失败")
	}
	return nil
}

// IsBlacklisted 查询吊销标记
// hit为false表示缓存未命中,结论需要回源数据库
func (c *BlacklistCache) IsBlacklisted(ctx context.Context, jti string) (bool, bool, error) {
	key := blacklistKey(jti)
	_, err := c.client.Get(ctx, key).Result()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, apperrors.Wrap(err, "查询黑名单缓存失败")
	}

	return true, true, nil
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}
