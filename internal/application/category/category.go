package category

import (
	"context"

	"github.com/zhangwei/bookshop/internal/domain/category"
)

// UseCase 分类管理用例
type UseCase struct {
	repo category.Repository
}

// NewUseCase 创建分类用例
func NewUseCase(repo category.Repository) *UseCase {
	return &UseCase{repo: repo}
}

// Create 创建分类,名称重复返回ErrCategoryDuplicate
func (uc *UseCase) Create(ctx context.Context, name, description string) (*category.Category, error) {
	c := category.NewCategory(name, description)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get 查询单个分类
func (uc *UseCase) Get(ctx context.Context, id uint) (*category.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

// List 分页列表
func (uc *UseCase) List(ctx context.Context, page, pageSize int) ([]*category.Category, int64, error) {
	return uc.repo.List(ctx, page, pageSize)
}

// ListAll 全量列表(下拉选择用)
func (uc *UseCase) ListAll(ctx context.Context) ([]*category.Category, error) {
	return uc.repo.ListAll(ctx)
}

// Update 更新分类
func (uc *UseCase) Update(ctx context.Context, id uint, name, description string) (*category.Category, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Description = description
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete 删除分类,仍被图书引用时返回ErrCategoryReferenced
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}
