package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类,名称重复返回ErrCategoryDuplicate
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类,不存在返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// List 分页列表,按ID升序,返回当前页与总数
	List(ctx context.Context, page, pageSize int) ([]*Category, int64, error)

	// ListAll 全量列表(下拉选择用),按名称升序
	ListAll(ctx context.Context) ([]*Category, error)

	// Update 更新分类,名称重复返回ErrCategoryDuplicate
	Update(ctx context.Context, c *Category) error

	// Delete 删除分类
	// 仍有图书引用该分类时返回ErrCategoryReferenced
	Delete(ctx context.Context, id uint) error
}
