// Package tracing 提供基于OpenTelemetry的分布式追踪
//
// 核心概念：
// - Trace：一个完整的请求链路，所有Span共享同一个TraceID
// - Span：一个操作单元（HTTP处理、数据库查询、消息发布）
// - Propagator：跨服务传递TraceID/SpanID（W3C traceparent头）
//
// 通过OTLP gRPC协议上报到Jaeger Collector，厂商中立，
// 未来可无缝切换到Zipkin、Datadog等后端。
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（Jaeger UI中的分组名）
//   - endpoint: Collector的OTLP gRPC端点（如 localhost:4317）
//
// 返回的shutdown函数必须在程序退出前调用，刷新未发送的Span。
//
// 采样策略：AlwaysSample（100%采样），适合开发/测试环境；
// 生产环境建议改为 sdktrace.TraceIDRatioBased(0.01)。
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(), // 生产环境应启用TLS
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// service.name是必需属性，Jaeger UI按它分组
	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	// BatchSpanProcessor批量发送，性能优于SimpleSpanProcessor
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	// W3C Trace Context + Baggage，跨服务HTTP调用自动传递
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建一个新的Span
//
// 如果ctx包含父Span，新Span自动成为子Span；必须用返回的ctx
// 调用下游函数，否则无法构建调用树。
//
// Span命名用操作名（CreateOrder），动态值放属性里，不拼进名称。
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, spanName)
}

// ExtractTraceID 从Context提取TraceID（用于日志关联）
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().SpanID().String()
}
