package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，前三位与HTTP状态码对应
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：五位错误码，前三位对应HTTP状态码，后两位为业务细分
// - 400xx: 参数或业务数据非法
// - 401xx: 未认证/凭证无效
// - 403xx: 已认证但无权限
// - 404xx: 资源不存在
// - 409xx: 资源冲突
// - 500xx: 服务端错误

const (
	// 参数与业务数据错误（40000-40099）
	ErrCodeInvalidParams    = 40000 // 参数错误(通用)
	ErrCodeBindError        = 40001 // 参数绑定失败
	ErrCodeInvalidDiscount  = 40002 // 折扣数据非法
	ErrCodeEmptyOrder       = 40003 // 订单明细为空
	ErrCodeInvalidOrderData = 40004 // 订单数据非法

	// 认证错误（40100-40199）
	ErrCodeUnauthorized       = 40100 // 未登录
	ErrCodeInvalidCredentials = 40101 // 凭证无效(统一错误,不区分原因)

	// 权限错误（40300-40399）
	ErrCodeForbidden   = 40300 // 无权限访问
	ErrCodeNotAdmin    = 40301 // 需要管理员权限
	ErrCodeNotResource = 40302 // 无权访问该资源

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound     = 40401 // 用户不存在
	ErrCodeBookNotFound     = 40402 // 图书不存在
	ErrCodeOrderNotFound    = 40403 // 订单不存在
	ErrCodeAuthorNotFound   = 40404 // 作者不存在
	ErrCodeCategoryNotFound = 40405 // 分类不存在
	ErrCodeDiscountNotFound = 40406 // 折扣不存在
	ErrCodeReviewNotFound   = 40407 // 评论不存在

	// 冲突错误（40900-40999）
	ErrCodeDuplicateEntry  = 40900 // 唯一约束冲突(通用)
	ErrCodeEmailDuplicate  = 40901 // 邮箱已存在
	ErrCodeDiscountOverlap = 40902 // 折扣时间段重叠
	ErrCodeReferenced      = 40903 // 资源被引用,无法删除

	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	// 说明：Token签名非法、sub缺失、已拉黑、用户不存在统一返回同一个错误,
	// 不向调用方区分具体原因,防止账号枚举
	ErrUnauthorized       = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "凭证无效")
	ErrForbidden          = New(ErrCodeForbidden, "无权限访问")
	ErrNotAdmin           = New(ErrCodeNotAdmin, "需要管理员权限")

	// 冲突
	ErrEmailDuplicate = New(ErrCodeEmailDuplicate, "邮箱已被注册")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// HTTPStatus 根据业务错误码推导HTTP状态码
// 错误码前三位即HTTP状态码,未知段一律按500处理
func HTTPStatus(code int) int {
	if code == 0 {
		return 200
	}
	status := code / 100
	switch status {
	case 400, 401, 403, 404, 409:
		return status
	default:
		return 500
	}
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
