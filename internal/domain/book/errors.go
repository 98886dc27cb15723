package book

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidSortMode 无效的排序方式
	ErrInvalidSortMode = apperrors.New(apperrors.ErrCodeInvalidParams, "排序方式不支持")
)
