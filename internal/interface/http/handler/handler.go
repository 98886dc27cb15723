// Package handler 实现HTTP处理器
//
// Handler只做三件事:绑定并校验参数、调用应用层用例、写统一响应。
// 业务规则一律下沉到domain/application层。
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
