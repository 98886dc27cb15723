package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 分页列表,按ID升序,返回当前页与总数
	List(ctx context.Context, page, pageSize int) ([]*Author, int64, error)

	// ListAll 全量列表(下拉选择用),按名称升序
	ListAll(ctx context.Context) ([]*Author, error)

	// Update 更新作者
	Update(ctx context.Context, a *Author) error

	// Delete 删除作者
	// 仍有图书引用该作者时返回ErrAuthorReferenced
	Delete(ctx context.Context, id uint) error
}
