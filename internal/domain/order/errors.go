package order

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrEmptyOrder 订单明细为空
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeEmptyOrder, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量必须为1-8
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "单本图书购买数量必须为1-8")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidOrderData, "订单状态不允许此操作")

	// ErrCannotCancel 已发货/已送达的订单不可取消
	ErrCannotCancel = apperrors.New(apperrors.ErrCodeInvalidOrderData, "该状态的订单无法取消")

	// ErrNotOwner 无权访问他人订单
	ErrNotOwner = apperrors.New(apperrors.ErrCodeNotResource, "无权访问该订单")
)
