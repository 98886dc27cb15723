package book

import (
	"context"

	"github.com/zhangwei/bookshop/internal/domain/author"
	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/category"
)

// 固定榜单长度
const (
	recommendedLimit   = 8
	popularLimit       = 8
	topDiscountedLimit = 10
)

// UseCase 图书管理与检索用例
// 设计说明:
// 1. 写操作校验分类/作者存在(外键引用先行检查,错误信息更友好)
// 2. 列表查询的折后价/评分计算下沉到仓储的复合查询
type UseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
	authorRepo   author.Repository
}

// NewUseCase 创建图书用例
func NewUseCase(
	bookRepo book.Repository,
	categoryRepo category.Repository,
	authorRepo author.Repository,
) *UseCase {
	return &UseCase{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		authorRepo:   authorRepo,
	}
}

// CreateInput 创建/更新图书入参
type CreateInput struct {
	Title      string
	Summary    string
	Price      int64
	CoverPhoto string
	CategoryID uint
	AuthorID   uint
}

// Create 创建图书
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*book.Book, error) {
	if in.Price < 0 {
		return nil, book.ErrInvalidPrice
	}
	if err := uc.checkRefs(ctx, in.CategoryID, in.AuthorID); err != nil {
		return nil, err
	}

	b := book.NewBook(in.Title, in.Summary, in.Price, in.CoverPhoto, in.CategoryID, in.AuthorID)
	if err := uc.bookRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Get 查询单本图书
func (uc *UseCase) Get(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookRepo.FindByID(ctx, id)
}

// List 分页检索读模型
func (uc *UseCase) List(ctx context.Context, params book.ListParams) ([]*book.Listing, int64, error) {
	if !params.SortMode.Valid() {
		return nil, 0, book.ErrInvalidSortMode
	}
	return uc.bookRepo.List(ctx, params)
}

// Recommended 推荐榜(固定8本)
func (uc *UseCase) Recommended(ctx context.Context) ([]*book.Listing, error) {
	return uc.bookRepo.ListRecommended(ctx, recommendedLimit)
}

// Popular 热门榜(固定8本)
func (uc *UseCase) Popular(ctx context.Context) ([]*book.Listing, error) {
	return uc.bookRepo.ListPopular(ctx, popularLimit)
}

// TopDiscounted 折扣榜(固定10本)
func (uc *UseCase) TopDiscounted(ctx context.Context) ([]*book.Listing, error) {
	return uc.bookRepo.ListTopDiscounted(ctx, topDiscountedLimit)
}

// Update 更新图书
func (uc *UseCase) Update(ctx context.Context, id uint, in CreateInput) (*book.Book, error) {
	if in.Price < 0 {
		return nil, book.ErrInvalidPrice
	}

	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.checkRefs(ctx, in.CategoryID, in.AuthorID); err != nil {
		return nil, err
	}

	b.Title = in.Title
	b.Summary = in.Summary
	b.Price = in.Price
	b.CoverPhoto = in.CoverPhoto
	b.CategoryID = in.CategoryID
	b.AuthorID = in.AuthorID

	if err := uc.bookRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete 删除图书
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.bookRepo.Delete(ctx, id)
}

// checkRefs 校验分类/作者存在
func (uc *UseCase) checkRefs(ctx context.Context, categoryID, authorID uint) error {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := uc.authorRepo.FindByID(ctx, authorID); err != nil {
		return err
	}
	return nil
}
