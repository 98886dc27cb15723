package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/discount"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
//  1. 实现domain/book/repository.go定义的接口
//  2. 列表查询是复合查询:图书 LEFT JOIN 生效折扣聚合 LEFT JOIN 评论聚合,
//     折后价/平均分/评论数在SQL中计算,排序分页都基于计算列
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = 0

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByIDForUpdate 行锁查找图书(SELECT ... FOR UPDATE)
// 必须在事务内调用(getDB从context获取事务DB)
func (r *bookRepository) FindByIDForUpdate(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// listingRow 复合查询扫描行
type listingRow struct {
	BookModel
	FinalPrice  int64   `gorm:"column:final_price"`
	AvgRating   float64 `gorm:"column:avg_rating"`
	ReviewCount int64   `gorm:"column:review_count"`
}

// listingQuery 构建图书读模型基础查询
// 三段结构:
// 1. 生效折扣子查询:按图书取当日生效折扣的最低价(防御同书多条生效折扣)
// 2. 评论聚合子查询:平均分和评论数
// 3. 主查询LEFT JOIN两者,无折扣按定价,无评论按0分
func (r *bookRepository) listingQuery(ctx context.Context) *gorm.DB {
	db := getDB(ctx, r.db)
	// DATE列必须用零点日期比较,带时分秒会把结束日当天的折扣误判为过期
	today := discount.Today()

	activeDiscounts := db.Session(&gorm.Session{NewDB: true}).
		Table("discounts").
		Select("book_id, MIN(discount_price) AS discount_price").
		Where("(start_date IS NULL OR start_date <= ?) AND (end_date IS NULL OR end_date >= ?)", today, today).
		Group("book_id")

	reviewStats := db.Session(&gorm.Session{NewDB: true}).
		Table("reviews").
		Select("book_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Group("book_id")

	return db.Table("books").
		Select("books.*, "+
			"COALESCE(d.discount_price, books.price) AS final_price, "+
			"COALESCE(r.avg_rating, 0) AS avg_rating, "+
			"COALESCE(r.review_count, 0) AS review_count").
		Joins("LEFT JOIN (?) d ON d.book_id = books.id", activeDiscounts).
		Joins("LEFT JOIN (?) r ON r.book_id = books.id", reviewStats)
}

// List 分页查询读模型
// 排序规则:
//   - on_sale:            折扣力度(price-final)降序,折后价升序,ID升序
//   - popularity:         评论数降序,折后价升序,ID升序
//   - price_low_to_high:  折后价升序,ID升序
//   - price_high_to_low:  折后价降序,ID升序
//   - 默认:               书名升序,ID升序
//
// 评分下限是聚合后过滤(HAVING语义),总数统计必须带同样的过滤条件,
// 否则分页的total与实际页内容对不上
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Listing, int64, error) {
	query := r.listingQuery(ctx)

	if params.CategoryID != 0 {
		query = query.Where("books.category_id = ?", params.CategoryID)
	}
	if params.AuthorID != 0 {
		query = query.Where("books.author_id = ?", params.AuthorID)
	}
	if params.MinRating > 0 {
		query = query.Where("COALESCE(r.avg_rating, 0) >= ?", params.MinRating)
	}

	// 总数:同一谓词下的COUNT,去掉SELECT列避免计算开销
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Select("COUNT(*)").Scan(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	switch params.SortMode {
	case book.SortModeOnSale:
		query = query.Order("(books.price - COALESCE(d.discount_price, books.price)) DESC").
			Order("COALESCE(d.discount_price, books.price) ASC").
			Order("books.id ASC")
	case book.SortModePopularity:
		query = query.Order("COALESCE(r.review_count, 0) DESC").
			Order("COALESCE(d.discount_price, books.price) ASC").
			Order("books.id ASC")
	case book.SortModePriceLowToHigh:
		query = query.Order("COALESCE(d.discount_price, books.price) ASC").
			Order("books.id ASC")
	case book.SortModePriceHighToLow:
		query = query.Order("COALESCE(d.discount_price, books.price) DESC").
			Order("books.id ASC")
	default:
		query = query.Order("books.title ASC").Order("books.id ASC")
	}

	var rows []listingRow
	offset := (params.Page - 1) * params.PageSize
	if err := query.Limit(params.PageSize).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toListings(rows), total, nil
}

// ListRecommended 推荐榜:平均评分降序,折后价升序
func (r *bookRepository) ListRecommended(ctx context.Context, limit int) ([]*book.Listing, error) {
	var rows []listingRow
	err := r.listingQuery(ctx).
		Order("COALESCE(r.avg_rating, 0) DESC").
		Order("COALESCE(d.discount_price, books.price) ASC").
		Order("books.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询推荐图书失败")
	}
	return toListings(rows), nil
}

// ListPopular 热门榜:评论数降序,折后价升序
func (r *bookRepository) ListPopular(ctx context.Context, limit int) ([]*book.Listing, error) {
	var rows []listingRow
	err := r.listingQuery(ctx).
		Order("COALESCE(r.review_count, 0) DESC").
		Order("COALESCE(d.discount_price, books.price) ASC").
		Order("books.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询热门图书失败")
	}
	return toListings(rows), nil
}

// ListTopDiscounted 折扣榜:折扣力度降序,只取有折扣的书
func (r *bookRepository) ListTopDiscounted(ctx context.Context, limit int) ([]*book.Listing, error) {
	var rows []listingRow
	err := r.listingQuery(ctx).
		Where("d.discount_price IS NOT NULL AND d.discount_price < books.price").
		Order("(books.price - d.discount_price) DESC").
		Order("books.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询折扣图书失败")
	}
	return toListings(rows), nil
}

// Update 更新图书
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":       b.Title,
		"summary":     b.Summary,
		"price":       b.Price,
		"cover_photo": b.CoverPhoto,
		"category_id": b.CategoryID,
		"author_id":   b.AuthorID,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:         b.ID,
		Title:      b.Title,
		Summary:    b.Summary,
		Price:      b.Price,
		CoverPhoto: b.CoverPhoto,
		CategoryID: b.CategoryID,
		AuthorID:   b.AuthorID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:         model.ID,
		Title:      model.Title,
		Summary:    model.Summary,
		Price:      model.Price,
		CoverPhoto: model.CoverPhoto,
		CategoryID: model.CategoryID,
		AuthorID:   model.AuthorID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func toListings(rows []listingRow) []*book.Listing {
	listings := make([]*book.Listing, len(rows))
	for i := range rows {
		listings[i] = &book.Listing{
			Book:        *toBookEntity(&rows[i].BookModel),
			FinalPrice:  rows[i].FinalPrice,
			AvgRating:   rows[i].AvgRating,
			ReviewCount: rows[i].ReviewCount,
		}
	}
	return listings
}
