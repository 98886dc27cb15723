package order

import (
	"context"
)

// ListParams 订单列表查询参数
type ListParams struct {
	UserID   uint    // 0表示不过滤(仅管理员可不过滤)
	Status   *Status // nil表示不过滤
	Page     int
	PageSize int
}

// Repository 订单仓储接口
type Repository interface {
	// Create 创建订单及其明细(同一事务)
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单(含明细),不存在返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// List 分页列表(含明细),按OrderDate降序
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, o *Order) error
}
