package token

import (
	"context"
	"time"
)

// Repository Token黑名单仓储接口
type Repository interface {
	// Add 写入一条吊销记录,jti重复时静默成功(重复登出不报错)
	Add(ctx context.Context, t *BlacklistedToken) error

	// Exists 判断jti是否在黑名单中
	Exists(ctx context.Context, jti string) (bool, error)

	// DeleteExpired 删除Expiry早于now的记录,返回删除条数
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Cache 黑名单缓存接口(Redis实现)
// 只缓存"已吊销"的肯定结论,缓存miss时回源数据库
type Cache interface {
	// MarkBlacklisted 缓存吊销标记,ttl为Token剩余有效期
	MarkBlacklisted(ctx context.Context, jti string, ttl time.Duration) error

	// IsBlacklisted 查缓存,第二个返回值表示缓存是否命中
	IsBlacklisted(ctx context.Context, jti string) (blacklisted bool, hit bool, err error)
}
