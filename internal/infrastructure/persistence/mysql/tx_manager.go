package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务在context中的键
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. fn返回error时自动ROLLBACK,返回nil时自动COMMIT
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内的所有Repository操作都会在同一事务中执行;
// Repository的getDB会从context提取事务DB
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    existing, err := discountRepo.ListByBookForUpdate(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    if err := discount.CheckOverlap(d, existing, 0); err != nil {
//	        return err // 自动回滚
//	    }
//	    return discountRepo.Create(ctx, d) // nil则提交
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// getDB 从context获取事务DB,没有事务时使用默认DB
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
