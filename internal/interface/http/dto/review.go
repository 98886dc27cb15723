package dto

import "github.com/zhangwei/bookshop/internal/domain/review"

// CreateReviewRequest 发表书评请求
type CreateReviewRequest struct {
	BookID uint   `json:"book_id" binding:"required" example:"1"`
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Title  string `json:"title" binding:"required,max=120" example:"读完通宵"`
	Body   string `json:"body" binding:"max=5000"`
}

// UpdateReviewRequest 修改书评请求
type UpdateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Title  string `json:"title" binding:"required,max=120" example:"二刷之后"`
	Body   string `json:"body" binding:"max=5000"`
}

// ListReviewsQuery 书评列表查询参数
type ListReviewsQuery struct {
	PageQuery
	BookID     uint   `form:"book_id" example:"1"`
	UserID     uint   `form:"user_id" example:"1"`
	RatingStar int    `form:"rating_star" binding:"omitempty,min=1,max=5" example:"5"` // 只看某一星级
	Sort       string `form:"sort" binding:"omitempty,oneof=newest oldest" example:"newest"`
}

// ReviewResponse 书评响应
type ReviewResponse struct {
	ID         uint   `json:"id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	UserID     uint   `json:"user_id" example:"1"`
	Rating     int    `json:"rating" example:"5"`
	Title      string `json:"title" example:"读完通宵"`
	Body       string `json:"body"`
	ReviewDate string `json:"review_date" example:"2024-01-15 10:30:00"`
}

// NewReviewResponse 领域实体→HTTP响应
func NewReviewResponse(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		BookID:     r.BookID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Title:      r.Title,
		Body:       r.Body,
		ReviewDate: formatTime(r.ReviewDate),
	}
}

// NewReviewResponses 批量转换
func NewReviewResponses(reviews []*review.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewResponse(r))
	}
	return out
}

// RatingStatsResponse 图书评分统计响应
type RatingStatsResponse struct {
	BookID        uint    `json:"book_id" example:"1"`
	AverageRating float64 `json:"average_rating" example:"4.5"`
	TotalReviews  int64   `json:"total_reviews" example:"12"`
	FiveStars     int64   `json:"five_stars" example:"8"`
	FourStars     int64   `json:"four_stars" example:"2"`
	ThreeStars    int64   `json:"three_stars" example:"1"`
	TwoStars      int64   `json:"two_stars" example:"1"`
	OneStar       int64   `json:"one_star" example:"0"`
}

// NewRatingStatsResponse 统计读模型→HTTP响应
func NewRatingStatsResponse(s *review.RatingStats) *RatingStatsResponse {
	return &RatingStatsResponse{
		BookID:        s.BookID,
		AverageRating: s.AverageRating,
		TotalReviews:  s.TotalReviews,
		FiveStars:     s.FiveStars,
		FourStars:     s.FourStars,
		ThreeStars:    s.ThreeStars,
		TwoStars:      s.TwoStars,
		OneStar:       s.OneStar,
	}
}
