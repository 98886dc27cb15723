package author

import (
	"context"

	"github.com/zhangwei/bookshop/internal/domain/author"
)

// UseCase 作者管理用例
// 写操作由HTTP层的管理员中间件把关,这里不重复校验角色
type UseCase struct {
	repo author.Repository
}

// NewUseCase 创建作者用例
func NewUseCase(repo author.Repository) *UseCase {
	return &UseCase{repo: repo}
}

// Create 创建作者
func (uc *UseCase) Create(ctx context.Context, name, description string) (*author.Author, error) {
	a := author.NewAuthor(name, description)
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get 查询单个作者
func (uc *UseCase) Get(ctx context.Context, id uint) (*author.Author, error) {
	return uc.repo.FindByID(ctx, id)
}

// List 分页列表
func (uc *UseCase) List(ctx context.Context, page, pageSize int) ([]*author.Author, int64, error) {
	return uc.repo.List(ctx, page, pageSize)
}

// ListAll 全量列表(下拉选择用)
func (uc *UseCase) ListAll(ctx context.Context) ([]*author.Author, error) {
	return uc.repo.ListAll(ctx)
}

// Update 更新作者
func (uc *UseCase) Update(ctx context.Context, id uint, name, description string) (*author.Author, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = name
	a.Description = description
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete 删除作者,仍被图书引用时返回ErrAuthorReferenced
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}
