package user

import (
	apperrors "github.com/zhangwei/bookshop/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.ErrEmailDuplicate

	// ErrInvalidCredentials 凭证无效
	// 登录/鉴权失败统一返回此错误,不区分"用户不存在"与"密码错误",防止枚举
	ErrInvalidCredentials = apperrors.ErrInvalidCredentials
)
