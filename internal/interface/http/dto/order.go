package dto

import "github.com/zhangwei/bookshop/internal/domain/order"

// CreateOrderRequest HTTP下单请求
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest 订单明细项
// 单本图书一次最多购买8本
type CreateOrderItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=8" example:"2"`
}

// UpdateOrderStatusRequest 更新订单状态请求(管理员)
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled" example:"shipped"`
}

// ListOrdersQuery 订单列表查询参数
// user_id/status筛选仅管理员生效,普通用户固定查自己的订单
type ListOrdersQuery struct {
	PageQuery
	UserID uint   `form:"user_id" example:"1"`
	Status string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled" example:"pending"`
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	BookID    uint   `json:"book_id" example:"1"`
	Quantity  int    `json:"quantity" example:"2"`
	Price     int64  `json:"price" example:"4900"` // 下单时的单价快照(分)
	PriceYuan string `json:"price_yuan" example:"49.00"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID         uint                `json:"id" example:"1"`
	UserID     uint                `json:"user_id" example:"1"`
	OrderDate  string              `json:"order_date" example:"2024-01-15 10:30:00"`
	Amount     int64               `json:"amount" example:"9800"`
	AmountYuan string              `json:"amount_yuan" example:"98.00"`
	Status     string              `json:"status" example:"pending"`
	Items      []OrderItemResponse `json:"items"`
}

// NewOrderResponse 领域实体→HTTP响应
func NewOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceYuan: FormatPriceYuan(item.Price),
		})
	}

	return &OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		OrderDate:  formatTime(o.OrderDate),
		Amount:     o.Amount,
		AmountYuan: FormatPriceYuan(o.Amount),
		Status:     o.Status.String(),
		Items:      items,
	}
}

// NewOrderResponses 批量转换
func NewOrderResponses(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
