package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zhangwei/bookshop/internal/domain/token"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// tokenRepository Token黑名单仓储实现(MySQL)
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository 创建Token黑名单仓储
func NewTokenRepository(db *gorm.DB) token.Repository {
	return &tokenRepository{db: db}
}

// Add 写入吊销记录
// jti有唯一索引,重复登出时的冲突按成功处理(幂等)
func (r *tokenRepository) Add(ctx context.Context, t *token.BlacklistedToken) error {
	model := &BlacklistedTokenModel{
		JTI:           t.JTI,
		Expiry:        t.Expiry,
		BlacklistedOn: t.BlacklistedOn,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return nil
		}
		return apperrors.Wrap(err, "写入Token黑名单失败")
	}

	t.ID = model.ID
	return nil
}

// Exists 判断jti是否在黑名单中
func (r *tokenRepository) Exists(ctx context.Context, jti string) (bool, error) {
	var model BlacklistedTokenModel
	err := getDB(ctx, r.db).Where("jti = ?", jti).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(err, "查询Token黑名单失败")
	}

	return true, nil
}

// DeleteExpired 删除已过期的吊销记录
// Expiry有索引,范围删除走索引扫描
func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := getDB(ctx, r.db).
		Where("expiry < ?", now).
		Delete(&BlacklistedTokenModel{})

	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "清理Token黑名单失败")
	}

	return result.RowsAffected, nil
}
