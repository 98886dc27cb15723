// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三组：
// 1. HTTP请求指标：总数（Counter）、耗时分布（Histogram）、处理中请求数（Gauge）
// 2. 业务指标：订单创建成功/失败数、订单创建耗时、Token黑名单清理数
// 3. 基础设施指标：消息发布数、熔断器状态
//
// 使用方式：启动时调用InitMetrics()注册到默认Registry，
// 并通过promhttp.Handler()暴露/metrics端点供Prometheus抓取。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST）、path（路由模板）、status（200/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// OrdersCreatedTotal 订单创建成功总数
	OrdersCreatedTotal prometheus.Counter

	// OrdersFailedTotal 订单创建失败总数
	OrdersFailedTotal prometheus.Counter

	// OrderCreationDuration 订单创建耗时（秒）
	OrderCreationDuration prometheus.Histogram

	// TokensPurgedTotal 黑名单过期Token清理总数
	TokensPurgedTotal prometheus.Counter

	// 基础设施指标

	// MessagesPublishedTotal 消息发布总数
	// 标签：routing_key、result（success/failure/rejected）
	MessagesPublishedTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "订单创建成功总数",
		},
	)

	OrdersFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "订单创建失败总数",
		},
	)

	OrderCreationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_creation_duration_seconds",
			Help:    "订单创建耗时（秒）",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	TokensPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blacklisted_tokens_purged_total",
			Help: "黑名单过期Token清理总数",
		},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)
}
