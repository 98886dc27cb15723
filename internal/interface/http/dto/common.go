package dto

import (
	"fmt"
	"time"
)

// PageQuery 通用分页参数
// 页码从1开始,每页最大100条
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// Normalize 填充分页默认值
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}

// formatTime 统一的时间格式化
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// formatDate 日期格式化(折扣起止日期用)
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
