package review

import (
	"context"

	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/review"
)

// UseCase 图书评论用例
// 设计说明:
// 1. 评论修改仅限作者本人,删除允许作者本人或管理员
// 2. 修改内容时刷新评论日期,使其在默认排序中重新置顶
type UseCase struct {
	reviewRepo review.Repository
	bookRepo   book.Repository
}

// NewUseCase 创建评论用例
func NewUseCase(reviewRepo review.Repository, bookRepo book.Repository) *UseCase {
	return &UseCase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// CreateInput 发表评论入参
type CreateInput struct {
	BookID uint
	UserID uint
	Rating int
	Title  string
	Body   string
}

// Create 发表评论
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*review.Review, error) {
	if _, err := uc.bookRepo.FindByID(ctx, in.BookID); err != nil {
		return nil, err
	}

	r, err := review.NewReview(in.BookID, in.UserID, in.Rating, in.Title, in.Body)
	if err != nil {
		return nil, err
	}
	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Get 查询单条评论
func (uc *UseCase) Get(ctx context.Context, id uint) (*review.Review, error) {
	return uc.reviewRepo.FindByID(ctx, id)
}

// List 分页查询评论
func (uc *UseCase) List(ctx context.Context, params review.ListParams) ([]*review.Review, int64, error) {
	return uc.reviewRepo.List(ctx, params)
}

// Stats 查询图书评分统计
func (uc *UseCase) Stats(ctx context.Context, bookID uint) (*review.RatingStats, error) {
	if _, err := uc.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.Stats(ctx, bookID)
}

// UpdateInput 修改评论入参
type UpdateInput struct {
	Rating int
	Title  string
	Body   string
}

// Update 修改评论(仅作者本人)
func (uc *UseCase) Update(ctx context.Context, id, userID uint, in UpdateInput) (*review.Review, error) {
	r, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(userID) {
		return nil, review.ErrNotOwner
	}

	if err := r.SetContent(in.Rating, in.Title, in.Body); err != nil {
		return nil, err
	}
	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete 删除评论(作者本人或管理员)
func (uc *UseCase) Delete(ctx context.Context, id, userID uint, isAdmin bool) error {
	r, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && !r.IsOwnedBy(userID) {
		return review.ErrNotOwner
	}
	return uc.reviewRepo.Delete(ctx, id)
}
