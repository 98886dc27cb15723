package dto

import (
	"time"

	"github.com/zhangwei/bookshop/internal/domain/discount"
)

// 折扣日期的传输格式
const dateLayout = "2006-01-02"

// CreateDiscountRequest 创建折扣请求
// 起止日期均可为空:空的起点表示立即生效,空的终点表示长期有效
type CreateDiscountRequest struct {
	BookID        uint   `json:"book_id" binding:"required" example:"1"`
	DiscountPrice int64  `json:"discount_price" binding:"min=0" example:"4900"` // 折扣价(分)
	StartDate     string `json:"start_date" binding:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
	EndDate       string `json:"end_date" binding:"omitempty,datetime=2006-01-02" example:"2024-06-18"`
}

// UpdateDiscountRequest 更新折扣请求(不允许改绑图书)
type UpdateDiscountRequest struct {
	DiscountPrice int64  `json:"discount_price" binding:"min=0" example:"4900"`
	StartDate     string `json:"start_date" binding:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
	EndDate       string `json:"end_date" binding:"omitempty,datetime=2006-01-02" example:"2024-06-18"`
}

// ParseDate 解析可空日期字段,空串返回nil
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListDiscountsQuery 折扣列表查询参数
type ListDiscountsQuery struct {
	PageQuery
	BookID     uint `form:"book_id" example:"1"`
	ActiveOnly bool `form:"active_only" example:"true"`
}

// DiscountResponse 折扣响应
type DiscountResponse struct {
	ID                uint   `json:"id" example:"1"`
	BookID            uint   `json:"book_id" example:"1"`
	DiscountPrice     int64  `json:"discount_price" example:"4900"`
	DiscountPriceYuan string `json:"discount_price_yuan" example:"49.00"`
	StartDate         string `json:"start_date" example:"2024-06-01"` // 空串表示无起点
	EndDate           string `json:"end_date" example:"2024-06-18"`   // 空串表示无终点
	Active            bool   `json:"active" example:"true"`           // 今天是否生效
	CreatedAt         string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// NewDiscountResponse 领域实体→HTTP响应
func NewDiscountResponse(d *discount.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:                d.ID,
		BookID:            d.BookID,
		DiscountPrice:     d.DiscountPrice,
		DiscountPriceYuan: FormatPriceYuan(d.DiscountPrice),
		StartDate:         formatDate(d.Range.Start),
		EndDate:           formatDate(d.Range.End),
		Active:            d.IsActiveOn(time.Now()),
		CreatedAt:         formatTime(d.CreatedAt),
	}
}

// NewDiscountResponses 批量转换
func NewDiscountResponses(discounts []*discount.Discount) []*DiscountResponse {
	out := make([]*DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, NewDiscountResponse(d))
	}
	return out
}
