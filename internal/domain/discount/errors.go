package discount

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 折扣领域错误定义
var (
	// ErrDiscountNotFound 折扣不存在
	ErrDiscountNotFound = apperrors.New(apperrors.ErrCodeDiscountNotFound, "折扣不存在")

	// ErrInvalidDateRange 开始日期晚于结束日期
	ErrInvalidDateRange = apperrors.New(apperrors.ErrCodeInvalidDiscount, "折扣开始日期不能晚于结束日期")

	// ErrInvalidPrice 折扣价不能为负数
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidDiscount, "折扣价不能为负数")

	// ErrDiscountOverlap 与该图书已有折扣的时间段重叠
	ErrDiscountOverlap = apperrors.New(apperrors.ErrCodeDiscountOverlap, "折扣时间段与已有折扣重叠")
)
