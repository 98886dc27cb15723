package token

import (
	"time"
)

// BlacklistedToken 已吊销Token记录
// 设计说明:
// 1. 登出时按JWT的jti声明吊销,Token未过期前也会被拒绝
// 2. 数据库表是黑名单的权威来源,Redis仅作读穿透缓存
// 3. Expiry取自Token自身的exp,过期记录由定时任务清理
type BlacklistedToken struct {
	ID            uint
	JTI           string // JWT ID(jti声明),唯一索引
	Expiry        time.Time
	BlacklistedOn time.Time
}

// NewBlacklistedToken 创建吊销记录
func NewBlacklistedToken(jti string, expiry time.Time) *BlacklistedToken {
	return &BlacklistedToken{
		JTI:           jti,
		Expiry:        expiry,
		BlacklistedOn: time.Now(),
	}
}

// IsExpired Token本身是否已过期(过期记录可以被清理)
func (t *BlacklistedToken) IsExpired(now time.Time) bool {
	return !t.Expiry.After(now)
}
