// Package eventbus 封装业务事件发布
//
// 订单流程通过RabbitMQ对外发布事件(order.created等),
// 发布路径由熔断器保护:MQ持续不可用时快速失败,
// 不拖慢订单主流程(订单已落库,事件丢失只记日志)。
package eventbus

import (
	"log"
	"time"

	"github.com/zhangwei/bookshop/pkg/circuitbreaker"
	"github.com/zhangwei/bookshop/pkg/metrics"
	"github.com/zhangwei/bookshop/pkg/mq"
)

// 事件路由键
const (
	RoutingKeyOrderCreated   = "order.created"
	RoutingKeyOrderCancelled = "order.cancelled"
)

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID   uint      `json:"order_id"`
	UserID    uint      `json:"user_id"`
	Amount    int64     `json:"amount"`
	ItemCount int       `json:"item_count"`
	OrderDate time.Time `json:"order_date"`
}

// OrderCancelledEvent 订单取消事件
type OrderCancelledEvent struct {
	OrderID uint `json:"order_id"`
	UserID  uint `json:"user_id"`
}

// Publisher 事件发布器
// publisher为nil时(未配置MQ)所有发布调用都是空操作
type Publisher struct {
	publisher *mq.Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewPublisher 创建事件发布器
// 熔断策略:连续5次失败熔断,30秒后半开探测
func NewPublisher(publisher *mq.Publisher) *Publisher {
	cb := circuitbreaker.NewCircuitBreaker("order-events", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("熔断器状态变化: name=%s, %s -> %s", name, from, to)
		if metrics.CircuitBreakerState != nil {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		}
	})

	return &Publisher{
		publisher: publisher,
		breaker:   cb,
	}
}

// Publish 发布事件
// 发布失败不向上传播错误:业务写入已经完成,事件属于尽力投递
func (p *Publisher) Publish(routingKey string, event interface{}) {
	if p.publisher == nil {
		return
	}

	err := p.breaker.Execute(func() error {
		return p.publisher.Publish(routingKey, event)
	})

	result := "success"
	switch {
	case err == circuitbreaker.ErrOpenState:
		result = "rejected"
		log.Printf("事件发布被熔断: routing_key=%s", routingKey)
	case err != nil:
		result = "failure"
		log.Printf("事件发布失败: routing_key=%s, err=%v", routingKey, err)
	}

	if metrics.MessagesPublishedTotal != nil {
		metrics.MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
	}
}
