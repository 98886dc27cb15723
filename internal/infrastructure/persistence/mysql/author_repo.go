package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhangwei/bookshop/internal/domain/author"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Name:        a.Name,
		Description: a.Description,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// List 分页列表,按ID升序
func (r *authorRepository) List(ctx context.Context, page, pageSize int) ([]*author.Author, int64, error) {
	db := getDB(ctx, r.db)
	var total int64

	if err := db.Model(&AuthorModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	var models []AuthorModel
	offset := (page - 1) * pageSize
	err := db.Order("id ASC").Limit(pageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, total, nil
}

// ListAll 全量列表,按名称升序(下拉选择用)
func (r *authorRepository) ListAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Update 更新作者
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := getDB(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"name":        a.Name,
		"description": a.Description,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Delete 删除作者
// 先检查引用:仍有图书关联该作者时拒绝删除
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	var refs int64
	if err := db.Model(&BookModel{}).Where("author_id = ?", id).Count(&refs).Error; err != nil {
		return apperrors.Wrap(err, "检查作者引用失败")
	}
	if refs > 0 {
		return author.ErrAuthorReferenced
	}

	result := db.Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
