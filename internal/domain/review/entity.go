package review

import (
	"time"
)

// Review 书评实体
// 设计说明:
// 1. Rating为1-5整数,由工厂方法与HTTP层binding双重校验
// 2. ReviewDate与CreatedAt分离:修改书评会刷新ReviewDate(排序按它)
// 3. 只保存BookID/UserID,不跨聚合引用对象
type Review struct {
	ID         uint
	BookID     uint
	UserID     uint
	Rating     int
	Title      string
	Body       string
	ReviewDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReview 创建书评(工厂方法)
func NewReview(bookID, userID uint, rating int, title, body string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if title == "" || len(title) > 120 {
		return nil, ErrInvalidTitle
	}

	now := time.Now()
	return &Review{
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		Title:      title,
		Body:       body,
		ReviewDate: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsOwnedBy 书评是否属于指定用户
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.UserID == userID
}

// SetContent 修改书评内容并刷新ReviewDate
func (r *Review) SetContent(rating int, title, body string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if title == "" || len(title) > 120 {
		return ErrInvalidTitle
	}

	r.Rating = rating
	r.Title = title
	r.Body = body
	r.Touch()
	return nil
}

// Touch 刷新ReviewDate(修改书评后调用)
func (r *Review) Touch() {
	now := time.Now()
	r.ReviewDate = now
	r.UpdatedAt = now
}

// RatingStats 单本书的评分聚合
type RatingStats struct {
	BookID        uint
	AverageRating float64 // 无评论时为0
	TotalReviews  int64
	FiveStars     int64
	FourStars     int64
	ThreeStars    int64
	TwoStars      int64
	OneStar       int64
}
