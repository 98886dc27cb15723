package order

import (
	"context"
	"time"

	"github.com/zhangwei/bookshop/internal/domain/book"
	"github.com/zhangwei/bookshop/internal/domain/discount"
	"github.com/zhangwei/bookshop/internal/domain/order"
	"github.com/zhangwei/bookshop/internal/infrastructure/eventbus"
	"github.com/zhangwei/bookshop/pkg/metrics"
)

// TxManager 事务边界(由mysql.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UseCase 订单用例
// 设计说明:
//  1. 下单是一个事务:锁图书行 -> 取当日生效折扣 -> 单价快照 -> 写订单+明细
//     图书加锁保证快照期间折扣不被并发修改(折扣写入也先锁图书行)
//  2. 订单落库后发布order.created事件,发布失败不影响下单结果
//  3. 越权访问统一返回403,不暴露订单是否存在之外的信息
type UseCase struct {
	orderRepo    order.Repository
	bookRepo     book.Repository
	discountRepo discount.Repository
	txManager    TxManager
	events       *eventbus.Publisher
}

// NewUseCase 创建订单用例
func NewUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	discountRepo discount.Repository,
	txManager TxManager,
	events *eventbus.Publisher,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		bookRepo:     bookRepo,
		discountRepo: discountRepo,
		txManager:    txManager,
		events:       events,
	}
}

// CreateItemInput 下单明细入参
type CreateItemInput struct {
	BookID   uint
	Quantity int
}

// Create 创建订单
func (uc *UseCase) Create(ctx context.Context, userID uint, items []CreateItemInput) (*order.Order, error) {
	start := time.Now()

	if len(items) == 0 {
		return nil, order.ErrEmptyOrder
	}

	var o *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		orderItems := make([]order.OrderItem, 0, len(items))
		for _, item := range items {
			// 锁图书行:防止快照期间折扣被并发增删
			b, err := uc.bookRepo.FindByIDForUpdate(txCtx, item.BookID)
			if err != nil {
				return err
			}

			price := b.Price
			d, err := uc.discountRepo.FindActiveByBook(txCtx, b.ID, discount.Today())
			if err != nil {
				return err
			}
			if d != nil {
				price = d.DiscountPrice
			}

			orderItems = append(orderItems, order.OrderItem{
				BookID:   b.ID,
				Quantity: item.Quantity,
				Price:    price,
			})
		}

		var err error
		o, err = order.NewOrder(userID, orderItems)
		if err != nil {
			return err
		}
		return uc.orderRepo.Create(txCtx, o)
	})
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreationDuration.Observe(time.Since(start).Seconds())

	uc.events.Publish(eventbus.RoutingKeyOrderCreated, eventbus.OrderCreatedEvent{
		OrderID:   o.ID,
		UserID:    o.UserID,
		Amount:    o.Amount,
		ItemCount: len(o.Items),
		OrderDate: o.OrderDate,
	})
	return o, nil
}

// Get 查询订单(本人或管理员)
func (uc *UseCase) Get(ctx context.Context, id, userID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !o.IsOwnedBy(userID) {
		return nil, order.ErrNotOwner
	}
	return o, nil
}

// List 分页查询订单
// 普通用户只能查自己的订单;管理员可按用户/状态筛选全量订单
func (uc *UseCase) List(ctx context.Context, userID uint, isAdmin bool, params order.ListParams) ([]*order.Order, int64, error) {
	if !isAdmin {
		params.UserID = userID
	}
	return uc.orderRepo.List(ctx, params)
}

// UpdateStatus 更新订单状态(仅管理员入口调用)
func (uc *UseCase) UpdateStatus(ctx context.Context, id uint, target order.Status) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel 取消订单(本人或管理员)
func (uc *UseCase) Cancel(ctx context.Context, id, userID uint, isAdmin bool) (*order.Order, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !o.IsOwnedBy(userID) {
		return nil, order.ErrNotOwner
	}

	alreadyCancelled := o.Status == order.StatusCancelled
	if err := o.Cancel(); err != nil {
		return nil, err
	}
	if alreadyCancelled {
		return o, nil
	}

	if err := uc.orderRepo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}

	uc.events.Publish(eventbus.RoutingKeyOrderCancelled, eventbus.OrderCancelledEvent{
		OrderID: o.ID,
		UserID:  o.UserID,
	})
	return o, nil
}
