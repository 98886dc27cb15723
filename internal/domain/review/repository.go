package review

import (
	"context"
)

// ListParams 书评列表查询参数
type ListParams struct {
	BookID     uint // 0表示不过滤
	UserID     uint // 0表示不过滤
	RatingStar int  // 0表示不过滤,按星级精确筛选
	Ascending  bool // 默认按ReviewDate降序,true时升序
	Page       int
	PageSize   int
}

// Repository 书评仓储接口
type Repository interface {
	// Create 创建书评
	Create(ctx context.Context, r *Review) error

	// FindByID 根据ID查找书评,不存在返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// List 分页列表,按ReviewDate排序(方向见ListParams)
	List(ctx context.Context, params ListParams) ([]*Review, int64, error)

	// Stats 聚合某本书的评分统计,无评论时返回全0统计
	Stats(ctx context.Context, bookID uint) (*RatingStats, error)

	// Update 更新书评
	Update(ctx context.Context, r *Review) error

	// Delete 删除书评
	Delete(ctx context.Context, id uint) error
}
