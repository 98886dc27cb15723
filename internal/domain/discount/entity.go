package discount

import (
	"time"
)

// Discount 折扣实体
// 设计说明:
// 1. DiscountPrice以分(int64)存储,与图书定价同一单位
// 2. 生效区间用DateRange表达,nil边界表示无界
// 3. 不变量:同一本书的折扣区间两两不相交,由领域服务在事务内校验
type Discount struct {
	ID            uint
	BookID        uint
	DiscountPrice int64 // 折扣价(分)
	Range         DateRange
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDiscount 创建折扣(工厂方法)
func NewDiscount(bookID uint, discountPrice int64, start, end *time.Time) *Discount {
	now := time.Now()
	return &Discount{
		BookID:        bookID,
		DiscountPrice: discountPrice,
		Range:         DateRange{Start: start, End: end},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsActiveOn 指定日期是否生效
func (d *Discount) IsActiveOn(date time.Time) bool {
	return d.Range.Contains(date)
}
