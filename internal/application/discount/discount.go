package discount

import (
	"context"
	"time"

	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/discount"
)

// TxManager 事务边界(由mysql.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UseCase 折扣管理用例
// 设计说明:
//  1. 创建/更新在同一事务内完成: 锁图书行 -> 锁同书折扣行 -> 区间重叠校验 -> 写入
//  2. 先锁图书行再锁折扣行,保证同一本书的并发折扣写入串行化
//     (包括该书还没有任何折扣的情况,此时折扣表无行可锁)
type UseCase struct {
	discountRepo discount.Repository
	bookRepo     book.Repository
	txManager    TxManager
}

// NewUseCase 创建折扣用例
func NewUseCase(
	discountRepo discount.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *UseCase {
	return &UseCase{
		discountRepo: discountRepo,
		bookRepo:     bookRepo,
		txManager:    txManager,
	}
}

// CreateInput 创建折扣入参
type CreateInput struct {
	BookID        uint
	DiscountPrice int64
	StartDate     *time.Time
	EndDate       *time.Time
}

// Create 创建折扣
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*discount.Discount, error) {
	d := discount.NewDiscount(in.BookID, in.DiscountPrice, in.StartDate, in.EndDate)

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.bookRepo.FindByIDForUpdate(txCtx, d.BookID); err != nil {
			return err
		}
		if err := discount.ValidateRange(d); err != nil {
			return err
		}

		existing, err := uc.discountRepo.ListByBookForUpdate(txCtx, d.BookID)
		if err != nil {
			return err
		}
		if err := discount.CheckOverlap(d, existing, 0); err != nil {
			return err
		}

		return uc.discountRepo.Create(txCtx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Get 查询单个折扣
func (uc *UseCase) Get(ctx context.Context, id uint) (*discount.Discount, error) {
	return uc.discountRepo.FindByID(ctx, id)
}

// List 分页查询折扣
func (uc *UseCase) List(ctx context.Context, params discount.ListParams) ([]*discount.Discount, int64, error) {
	return uc.discountRepo.List(ctx, params)
}

// UpdateInput 更新折扣入参
type UpdateInput struct {
	DiscountPrice int64
	StartDate     *time.Time
	EndDate       *time.Time
}

// Update 更新折扣(不允许改绑图书)
func (uc *UseCase) Update(ctx context.Context, id uint, in UpdateInput) (*discount.Discount, error) {
	var updated *discount.Discount

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		d, err := uc.discountRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if _, err := uc.bookRepo.FindByIDForUpdate(txCtx, d.BookID); err != nil {
			return err
		}

		d.DiscountPrice = in.DiscountPrice
		d.Range = discount.DateRange{Start: in.StartDate, End: in.EndDate}
		if err := discount.ValidateRange(d); err != nil {
			return err
		}

		existing, err := uc.discountRepo.ListByBookForUpdate(txCtx, d.BookID)
		if err != nil {
			return err
		}
		if err := discount.CheckOverlap(d, existing, d.ID); err != nil {
			return err
		}

		if err := uc.discountRepo.Update(txCtx, d); err != nil {
			return err
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除折扣
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.discountRepo.Delete(ctx, id)
}
