package category

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrCategoryDuplicate 分类名称已存在
	ErrCategoryDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类名称已存在")

	// ErrCategoryReferenced 分类仍被图书引用,无法删除
	ErrCategoryReferenced = apperrors.New(apperrors.ErrCodeReferenced, "分类下仍有图书,无法删除")
)
