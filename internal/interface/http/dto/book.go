package dto

import "github.com/zhangwei/bookshop/internal/domain/book"

// BookRequest 创建/更新图书请求
type BookRequest struct {
	Title      string `json:"title" binding:"required,max=255" example:"三体"`
	Summary    string `json:"summary" binding:"max=5000"`
	Price      int64  `json:"price" binding:"required,min=0" example:"5900"` // 定价(分)
	CoverPhoto string `json:"cover_photo" binding:"omitempty,max=255" example:"covers/santi.jpg"`
	CategoryID uint   `json:"category_id" binding:"required" example:"1"`
	AuthorID   uint   `json:"author_id" binding:"required" example:"1"`
}

// ListBooksQuery 图书列表查询参数
type ListBooksQuery struct {
	PageQuery
	CategoryID uint    `form:"category_id" example:"1"`
	AuthorID   uint    `form:"author_id" example:"1"`
	MinRating  float64 `form:"min_rating" binding:"omitempty,min=0,max=5" example:"4"`
	SortMode   string  `form:"sort_mode" binding:"omitempty,oneof=on_sale popularity price_low_to_high price_high_to_low" example:"popularity"`
}

// BookResponse 图书详情响应
type BookResponse struct {
	ID         uint   `json:"id" example:"1"`
	Title      string `json:"title" example:"三体"`
	Summary    string `json:"summary"`
	Price      int64  `json:"price" example:"5900"`       // 定价(分)
	PriceYuan  string `json:"price_yuan" example:"59.00"` // 定价(元),方便前端显示
	CoverPhoto string `json:"cover_photo" example:"covers/santi.jpg"`
	CategoryID uint   `json:"category_id" example:"1"`
	AuthorID   uint   `json:"author_id" example:"1"`
	CreatedAt  string `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt  string `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// NewBookResponse 领域实体→HTTP响应
func NewBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:         b.ID,
		Title:      b.Title,
		Summary:    b.Summary,
		Price:      b.Price,
		PriceYuan:  FormatPriceYuan(b.Price),
		CoverPhoto: b.CoverPhoto,
		CategoryID: b.CategoryID,
		AuthorID:   b.AuthorID,
		CreatedAt:  formatTime(b.CreatedAt),
		UpdatedAt:  formatTime(b.UpdatedAt),
	}
}

// BookListItem 图书列表项(含折后价与评分聚合)
type BookListItem struct {
	ID             uint    `json:"id" example:"1"`
	Title          string  `json:"title" example:"三体"`
	Price          int64   `json:"price" example:"5900"`
	PriceYuan      string  `json:"price_yuan" example:"59.00"`
	FinalPrice     int64   `json:"final_price" example:"4900"` // 折后价(无折扣时等于定价)
	FinalPriceYuan string  `json:"final_price_yuan" example:"49.00"`
	DiscountPrice  *int64  `json:"discount_price" example:"4900"` // 仅折扣价严格低于定价时返回,否则为null
	OnSale         bool    `json:"on_sale" example:"true"`
	AvgRating      float64 `json:"avg_rating" example:"4.5"`
	ReviewCount    int64   `json:"review_count" example:"12"`
	CoverPhoto     string  `json:"cover_photo" example:"covers/santi.jpg"`
	CategoryID     uint    `json:"category_id" example:"1"`
	AuthorID       uint    `json:"author_id" example:"1"`
}

// NewBookListItem 读模型→HTTP列表项
func NewBookListItem(l *book.Listing) *BookListItem {
	var discountPrice *int64
	if l.HasDiscount() {
		p := l.FinalPrice
		discountPrice = &p
	}

	return &BookListItem{
		ID:             l.ID,
		Title:          l.Title,
		Price:          l.Price,
		PriceYuan:      FormatPriceYuan(l.Price),
		FinalPrice:     l.FinalPrice,
		FinalPriceYuan: FormatPriceYuan(l.FinalPrice),
		DiscountPrice:  discountPrice,
		OnSale:         l.HasDiscount(),
		AvgRating:      l.AvgRating,
		ReviewCount:    l.ReviewCount,
		CoverPhoto:     l.CoverPhoto,
		CategoryID:     l.CategoryID,
		AuthorID:       l.AuthorID,
	}
}

// NewBookListItems 批量转换
func NewBookListItems(listings []*book.Listing) []*BookListItem {
	out := make([]*BookListItem, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewBookListItem(l))
	}
	return out
}
