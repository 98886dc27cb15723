package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zhangwei/bookshop/internal/domain/review"
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// reviewRepository 书评仓储实现(MySQL)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建书评
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := toReviewModel(rv)
	model.ID = 0

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建书评失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}

	return toReviewEntity(&model), nil
}

// List 分页列表,按ReviewDate排序
func (r *reviewRepository) List(ctx context.Context, params review.ListParams) ([]*review.Review, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&ReviewModel{})

	if params.BookID != 0 {
		query = query.Where("book_id = ?", params.BookID)
	}
	if params.UserID != 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.RatingStar != 0 {
		query = query.Where("rating = ?", params.RatingStar)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评总数失败")
	}

	order := "review_date DESC"
	if params.Ascending {
		order = "review_date ASC"
	}

	var models []ReviewModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Order(order).Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, total, nil
}

// Stats 聚合评分统计
// 一条SQL拿全部指标:AVG + 总数 + 各星级计数(条件求和)
func (r *reviewRepository) Stats(ctx context.Context, bookID uint) (*review.RatingStats, error) {
	var row struct {
		AverageRating float64
		TotalReviews  int64
		FiveStars     int64
		FourStars     int64
		ThreeStars    int64
		TwoStars      int64
		OneStar       int64
	}

	err := getDB(ctx, r.db).
		Model(&ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, "+
			"COUNT(*) AS total_reviews, "+
			"SUM(rating = 5) AS five_stars, "+
			"SUM(rating = 4) AS four_stars, "+
			"SUM(rating = 3) AS three_stars, "+
			"SUM(rating = 2) AS two_stars, "+
			"SUM(rating = 1) AS one_star").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评分统计失败")
	}

	return &review.RatingStats{
		BookID:        bookID,
		AverageRating: row.AverageRating,
		TotalReviews:  row.TotalReviews,
		FiveStars:     row.FiveStars,
		FourStars:     row.FourStars,
		ThreeStars:    row.ThreeStars,
		TwoStars:      row.TwoStars,
		OneStar:       row.OneStar,
	}, nil
}

// Update 更新书评
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := getDB(ctx, r.db).Model(&ReviewModel{}).Where("id = ?", rv.ID).Updates(map[string]interface{}{
		"rating":      rv.Rating,
		"title":       rv.Title,
		"body":        rv.Body,
		"review_date": rv.ReviewDate,
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新书评失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// Delete 删除书评
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// toReviewModel 领域实体 → GORM模型
func toReviewModel(rv *review.Review) *ReviewModel {
	return &ReviewModel{
		ID:         rv.ID,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		Rating:     rv.Rating,
		Title:      rv.Title,
		Body:       rv.Body,
		ReviewDate: rv.ReviewDate,
		CreatedAt:  rv.CreatedAt,
		UpdatedAt:  rv.UpdatedAt,
	}
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:         model.ID,
		BookID:     model.BookID,
		UserID:     model.UserID,
		Rating:     model.Rating,
		Title:      model.Title,
		Body:       model.Body,
		ReviewDate: model.ReviewDate,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
