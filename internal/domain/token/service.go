package token

import (
	"context"
	"log"
	"time"
)

// Service Token黑名单领域服务
// 设计说明:
// 1. 数据库是权威来源,Redis是读穿透缓存:写时双写,读时先缓存后DB
// 2. 缓存故障不影响正确性,降级为直接查库
type Service interface {
	// Blacklist 吊销一个Token(按jti)
	Blacklist(ctx context.Context, jti string, expiry time.Time) error

	// IsBlacklisted 判断Token是否已被吊销
	IsBlacklisted(ctx context.Context, jti string) (bool, error)

	// PurgeExpired 清理已过期的吊销记录,返回清理条数
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService 创建黑名单服务
// cache可为nil(未配置Redis时退化为纯数据库模式)
func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

// Blacklist 吊销Token
// 先落库(权威),再写缓存;缓存写失败只记日志
func (s *service) Blacklist(ctx context.Context, jti string, expiry time.Time) error {
	t := NewBlacklistedToken(jti, expiry)
	if err := s.repo.Add(ctx, t); err != nil {
		return err
	}

	if s.cache != nil {
		ttl := time.Until(expiry)
		if ttl > 0 {
			if err := s.cache.MarkBlacklisted(ctx, jti, ttl); err != nil {
				log.Printf("黑名单缓存写入失败: jti=%s, err=%v", jti, err)
			}
		}
	}

	return nil
}

// IsBlacklisted 查询Token是否已吊销
func (s *service) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	if s.cache != nil {
		blacklisted, hit, err := s.cache.IsBlacklisted(ctx, jti)
		if err == nil && hit {
			return blacklisted, nil
		}
		if err != nil {
			// 缓存故障降级为查库
			log.Printf("黑名单缓存查询失败,回源数据库: jti=%s, err=%v", jti, err)
		}
	}

	return s.repo.Exists(ctx, jti)
}

// PurgeExpired 清理过期记录
// 由main启动的定时任务周期性调用(替代按请求概率触发的清理方式,
// 清理耗时不落在任何用户请求的关键路径上)
func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}
