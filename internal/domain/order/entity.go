package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. int存储(节省空间,便于索引),对外序列化为字符串
// 2. 状态值1-5递增,便于理解流转方向
type Status int

const (
	StatusPending    Status = 1 // 待处理
	StatusProcessing Status = 2 // 处理中
	StatusShipped    Status = 3 // 已发货
	StatusDelivered  Status = 4 // 已送达
	StatusCancelled  Status = 5 // 已取消
)

// String 实现Stringer接口,同时是API中的状态字符串
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusShipped:
		return "shipped"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseStatus 从API字符串解析状态
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "processing":
		return StatusProcessing, true
	case "shipped":
		return StatusShipped, true
	case "delivered":
		return StatusDelivered, true
	case "cancelled":
		return StatusCancelled, true
	default:
		return 0, false
	}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体,必须通过Order访问
// 2. Amount冗余存储下单时的总金额(分),防止图书改价后历史订单变化
// 3. OrderDate是业务时间(列表按它排序),与CreatedAt分离
type Order struct {
	ID        uint
	UserID    uint
	OrderDate time.Time
	Amount    int64 // 订单总金额(分)
	Status    Status
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem 订单明细项
// Price记录下单时的单价快照(有生效折扣时为折扣价)
type OrderItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
	Price    int64 // 下单时的单价(分)
}

// NewOrder 创建新订单(工厂方法)
// 明细不能为空,总金额按明细实时计算,初始状态Pending
func NewOrder(userID uint, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity < 1 || item.Quantity > 8 {
			return nil, ErrInvalidQuantity
		}
	}

	now := time.Now()
	o := &Order{
		UserID:    userID,
		OrderDate: now,
		Status:    StatusPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Amount = o.CalculateAmount()
	return o, nil
}

// CalculateAmount 按明细计算总金额
func (o *Order) CalculateAmount() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机规则:
//
//	pending    → processing / shipped / cancelled
//	processing → shipped / cancelled
//	shipped    → delivered
//	delivered  → 终态
//	cancelled  → 终态
func (o *Order) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusShipped, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered},
		StatusDelivered:  {},
		StatusCancelled:  {},
	}

	allowed, exists := transitions[o.Status]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换,非法跳转返回ErrInvalidStatusTransition
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel 取消订单(领域行为)
// 已发货/已送达的订单不可取消
func (o *Order) Cancel() error {
	if o.Status == StatusShipped || o.Status == StatusDelivered {
		return ErrCannotCancel
	}
	if o.Status == StatusCancelled {
		return nil // 重复取消幂等
	}
	return o.TransitionTo(StatusCancelled)
}

// IsOwnedBy 订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
