// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
// - HTTP层指标：请求总数、耗时、正在处理的请求数（由middleware记录）
// - 业务指标：图书登记、借阅创建的成功/失败计数（由handler记录）
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/books）、status（200/400/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BooksRegisteredTotal 图书登记成功总数（Counter）
	BooksRegisteredTotal prometheus.Counter

	// BooksRejectedTotal 图书登记被拒总数（Counter）
	// 标签：reason（duplicate_isbn/validation）
	BooksRejectedTotal *prometheus.CounterVec

	// LoansCreatedTotal 借阅创建成功总数（Counter）
	LoansCreatedTotal prometheus.Counter

	// LoansRejectedTotal 借阅创建被拒总数（Counter）
	// 标签：reason（book_not_found/already_loaned）
	LoansRejectedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
// 重复调用是安全的（幂等）
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
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

	// 图书业务指标
	BooksRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_registered_total",
			Help: "图书登记成功总数",
		},
	)

	BooksRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "books_rejected_total",
			Help: "图书登记被拒总数",
		},
		[]string{"reason"},
	)

	// 借阅业务指标
	LoansCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loans_created_total",
			Help: "借阅创建成功总数",
		},
	)

	LoansRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loans_rejected_total",
			Help: "借阅创建被拒总数",
		},
		[]string{"reason"},
	)
}

// IncCounter 递增Counter（便捷函数，未初始化时为空操作）
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签，未初始化时为空操作）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签，未初始化时为空操作）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
