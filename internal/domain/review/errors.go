package review

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "书评不存在")

	// ErrInvalidRating 评分必须为1-5
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须为1-5星")

	// ErrInvalidTitle 标题不能为空且最长120字符
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书评标题不能为空且最长120个字符")

	// ErrNotOwner 只能操作自己的书评
	ErrNotOwner = apperrors.New(apperrors.ErrCodeNotResource, "只能操作自己的书评")
)
