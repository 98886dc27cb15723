package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhangwei/bookshop/internal/domain/category"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类
// 名称唯一性由UNIQUE索引保证
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// List 分页列表,按ID升序
func (r *categoryRepository) List(ctx context.Context, page, pageSize int) ([]*category.Category, int64, error) {
	db := getDB(ctx, r.db)
	var total int64

	if err := db.Model(&CategoryModel{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类总数失败")
	}

	var models []CategoryModel
	offset := (page - 1) * pageSize
	err := db.Order("id ASC").Limit(pageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, total, nil
}

// ListAll 全量列表,按名称升序(下拉选择用)
func (r *categoryRepository) ListAll(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	err := getDB(ctx, r.db).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// Update 更新分类
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
	})

	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return category.ErrCategoryDuplicate
		}
		return apperrors.Wrap(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// Delete 删除分类
// 先检查引用:仍有图书关联该分类时拒绝删除
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	var refs int64
	if err := db.Model(&BookModel{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
		return apperrors.Wrap(err, "检查分类引用失败")
	}
	if refs > 0 {
		return category.ErrCategoryReferenced
	}

	result := db.Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
