package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhangwei/bookshop/pkg/metrics"
)

// Metrics HTTP请求指标中间件
// path使用路由模板(/api/v1/books/:id)而非实际URL,避免标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInProgress.Inc()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unknown" // 未匹配到路由(404)
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
