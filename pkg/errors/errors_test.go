package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   int
		status int
	}{
		{ErrCodeInvalidParams, 400},
		{ErrCodeEmptyOrder, 400},
		{ErrCodeUnauthorized, 401},
		{ErrCodeInvalidCredentials, 401},
		{ErrCodeNotAdmin, 403},
		{ErrCodeBookNotFound, 404},
		{ErrCodeDiscountOverlap, 409},
		{ErrCodeEmailDuplicate, 409},
		{ErrCodeInternal, 500},
		{ErrCodeDatabaseError, 500},
		{12345, 500}, // 未知码族兜底500
		{0, 200},     // 0是成功码
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.code), "code=%d", tt.code)
	}
}

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeBookNotFound, "图书不存在")
	assert.Contains(t, err.Error(), "图书不存在")
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "查询失败")

	appErr := GetAppError(err)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.ErrorIs(t, err, cause, "Wrap应保留原始错误链")
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrEmailDuplicate)
		assert.Equal(t, ErrCodeEmailDuplicate, appErr.Code)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
	})
}
