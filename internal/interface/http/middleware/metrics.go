package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wmdm/library/pkg/metrics"
)

// Metrics HTTP指标采集中间件
//
// 记录三类指标:
// - 请求总数(按方法、路由模板、状态码)
// - 请求耗时分布(按方法、路由模板)
// - 正在处理的请求数
//
// 注意:path使用gin的路由模板(如/api/books/:id)而不是实际URL,
// 否则每个不同的ID都会产生一个新的时间序列(基数爆炸)
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})

		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
