package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Price以分(int64)存储,避免浮点精度问题
// 2. 只保存CategoryID/AuthorID,不直接关联其他聚合的对象
// 3. 折扣不属于Book聚合,折扣价在查询层(BookListing)计算
type Book struct {
	ID         uint
	Title      string
	Summary    string
	Price      int64 // 定价(分)
	CoverPhoto string
	CategoryID uint
	AuthorID   uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBook 创建图书(工厂方法)
func NewBook(title, summary string, price int64, coverPhoto string, categoryID, authorID uint) *Book {
	now := time.Now()
	return &Book{
		Title:      title,
		Summary:    summary,
		Price:      price,
		CoverPhoto: coverPhoto,
		CategoryID: categoryID,
		AuthorID:   authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Listing 图书列表读模型
// 列表/推荐接口的查询结果,附带计算列:
// - FinalPrice: 有生效折扣时为最低折扣价,否则为定价
// - AvgRating/ReviewCount: 评论聚合,无评论时为0
type Listing struct {
	Book
	FinalPrice  int64
	AvgRating   float64
	ReviewCount int64
}

// HasDiscount 是否展示折扣价(折扣价严格低于定价才展示)
func (l *Listing) HasDiscount() bool {
	return l.FinalPrice < l.Price
}

// SortMode 列表排序方式
type SortMode string

const (
	// SortModeDefault 默认按书名升序
	SortModeDefault SortMode = ""

	// SortModeOnSale 折扣力度(定价-折后价)降序
	SortModeOnSale SortMode = "on_sale"

	// SortModePopularity 评论数降序
	SortModePopularity SortMode = "popularity"

	// SortModePriceLowToHigh 折后价升序
	SortModePriceLowToHigh SortMode = "price_low_to_high"

	// SortModePriceHighToLow 折后价降序
	SortModePriceHighToLow SortMode = "price_high_to_low"
)

// Valid 校验排序方式
func (m SortMode) Valid() bool {
	switch m {
	case SortModeDefault, SortModeOnSale, SortModePopularity,
		SortModePriceLowToHigh, SortModePriceHighToLow:
		return true
	default:
		return false
	}
}

// ListParams 图书列表查询参数
type ListParams struct {
	CategoryID uint     // 0表示不过滤
	AuthorID   uint     // 0表示不过滤
	MinRating  float64  // 0表示不过滤,按平均评分下限筛选(无评论按0分)
	SortMode   SortMode // 排序方式
	Page       int
	PageSize   int
}
