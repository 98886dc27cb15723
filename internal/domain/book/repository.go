package book

import (
	"context"
)

// Repository 图书仓储接口
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDForUpdate 行锁查找(SELECT ... FOR UPDATE)
	// 只能在事务内调用,下单时冻结价格读取
	FindByIDForUpdate(ctx context.Context, id uint) (*Book, error)

	// List 按参数分页查询读模型,排序见SortMode定义
	// 同值按ID升序兜底,保证分页结果稳定
	List(ctx context.Context, params ListParams) ([]*Listing, int64, error)

	// ListRecommended 推荐榜:平均评分降序,折后价升序,取前limit本
	ListRecommended(ctx context.Context, limit int) ([]*Listing, error)

	// ListPopular 热门榜:评论数降序,折后价升序,取前limit本
	ListPopular(ctx context.Context, limit int) ([]*Listing, error)

	// ListTopDiscounted 折扣榜:折扣力度(定价-折后价)降序,取前limit本
	ListTopDiscounted(ctx context.Context, limit int) ([]*Listing, error)

	// Update 更新图书
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error
}
