package author

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "作者不存在")

	// ErrAuthorReferenced 作者仍被图书引用,无法删除
	ErrAuthorReferenced = apperrors.New(apperrors.ErrCodeReferenced, "作者下仍有图书,无法删除")
)
