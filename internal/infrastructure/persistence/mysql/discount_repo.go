package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zhangwei/bookshop/internal/domain/discount"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// discountRepository 折扣仓储实现(MySQL)
// 重叠校验依赖ListByBookForUpdate的行锁:同一本书的折扣写入
// 必须先锁住该书已有的折扣行,并发创建会在锁上排队
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository 创建折扣仓储
func NewDiscountRepository(db *gorm.DB) discount.Repository {
	return &discountRepository{db: db}
}

// Create 创建折扣
func (r *discountRepository) Create(ctx context.Context, d *discount.Discount) error {
	model := toDiscountModel(d)
	model.ID = 0

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建折扣失败")
	}

	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找折扣
func (r *discountRepository) FindByID(ctx context.Context, id uint) (*discount.Discount, error) {
	var model DiscountModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, discount.ErrDiscountNotFound
		}
		return nil, apperrors.Wrap(err, "查询折扣失败")
	}

	return toDiscountEntity(&model), nil
}

// ListByBookForUpdate 行锁读取某本书的全部折扣
// 必须在事务内调用;该书还没有折扣时锁不住任何行,
// 并发首次创建的兜底靠调用方对book行加锁
func (r *discountRepository) ListByBookForUpdate(ctx context.Context, bookID uint) ([]*discount.Discount, error) {
	var models []DiscountModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("book_id = ?", bookID).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "锁定折扣失败")
	}

	discounts := make([]*discount.Discount, len(models))
	for i := range models {
		discounts[i] = toDiscountEntity(&models[i])
	}
	return discounts, nil
}

// List 分页列表,按ID升序
func (r *discountRepository) List(ctx context.Context, params discount.ListParams) ([]*discount.Discount, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&DiscountModel{})

	if params.BookID != 0 {
		query = query.Where("book_id = ?", params.BookID)
	}
	if params.ActiveOnly {
		today := discount.Today()
		query = query.Where("(start_date IS NULL OR start_date <= ?) AND (end_date IS NULL OR end_date >= ?)", today, today)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询折扣总数失败")
	}

	var models []DiscountModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询折扣列表失败")
	}

	discounts := make([]*discount.Discount, len(models))
	for i := range models {
		discounts[i] = toDiscountEntity(&models[i])
	}
	return discounts, total, nil
}

// FindActiveByBook 查某本书在date当天生效的最低价折扣
// 同书多条生效折扣是异常状态,取最低价防御
func (r *discountRepository) FindActiveByBook(ctx context.Context, bookID uint, date time.Time) (*discount.Discount, error) {
	day := discount.TruncateToDay(date)

	var model DiscountModel
	err := getDB(ctx, r.db).
		Where("book_id = ?", bookID).
		Where("(start_date IS NULL OR start_date <= ?) AND (end_date IS NULL OR end_date >= ?)", day, day).
		Order("discount_price ASC").
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "查询生效折扣失败")
	}

	return toDiscountEntity(&model), nil
}

// Update 更新折扣
func (r *discountRepository) Update(ctx context.Context, d *discount.Discount) error {
	result := getDB(ctx, r.db).Model(&DiscountModel{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
		"book_id":        d.BookID,
		"discount_price": d.DiscountPrice,
		"start_date":     d.Range.Start,
		"end_date":       d.Range.End,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新折扣失败")
	}
	if result.RowsAffected == 0 {
		return discount.ErrDiscountNotFound
	}
	return nil
}

// Delete 删除折扣
func (r *discountRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&DiscountModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除折扣失败")
	}
	if result.RowsAffected == 0 {
		return discount.ErrDiscountNotFound
	}
	return nil
}

// toDiscountModel 领域实体 → GORM模型
func toDiscountModel(d *discount.Discount) *DiscountModel {
	return &DiscountModel{
		ID:            d.ID,
		BookID:        d.BookID,
		DiscountPrice: d.DiscountPrice,
		StartDate:     d.Range.Start,
		EndDate:       d.Range.End,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// toDiscountEntity GORM模型 → 领域实体
func toDiscountEntity(model *DiscountModel) *discount.Discount {
	return &discount.Discount{
		ID:            model.ID,
		BookID:        model.BookID,
		DiscountPrice: model.DiscountPrice,
		Range: discount.DateRange{
			Start: model.StartDate,
			End:   model.EndDate,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
