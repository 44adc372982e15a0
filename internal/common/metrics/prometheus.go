// Package metrics 提供 Prometheus 指标收集
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标收集器
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	reservationsTotal   *prometheus.CounterVec
	roomsFree           prometheus.Gauge
	sweepCompletedTotal prometheus.Counter
}

var defaultMetrics *Metrics

// 生命周期操作标签
const (
	OpBook     = "book"
	OpCancel   = "cancel"
	OpCheckIn  = "check_in"
	OpCheckOut = "check_out"
)

// 操作结果标签
const (
	ResultOK       = "ok"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// Init 初始化指标收集器
func Init(namespace string) *Metrics {
	if namespace == "" {
		namespace = "hotel"
	}

	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		reservationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_operations_total",
				Help:      "Total number of reservation lifecycle operations",
			},
			[]string{"operation", "result"},
		),
		roomsFree: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rooms_free",
				Help:      "Current number of free rooms",
			},
		),
		sweepCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_completed_reservations_total",
				Help:      "Reservations auto-completed by the maintenance sweep",
			},
		),
	}

	defaultMetrics = m
	return m
}

// Get 获取默认指标收集器
func Get() *Metrics {
	if defaultMetrics == nil {
		return Init("")
	}
	return defaultMetrics
}

// RecordReservationOp 记录一次生命周期操作
func (m *Metrics) RecordReservationOp(operation, result string) {
	m.reservationsTotal.WithLabelValues(operation, result).Inc()
}

// SetFreeRooms 更新空闲房间数
func (m *Metrics) SetFreeRooms(n int64) {
	m.roomsFree.Set(float64(n))
}

// AddSweepCompleted 累计清扫完成的预订数
func (m *Metrics) AddSweepCompleted(n int64) {
	m.sweepCompletedTotal.Add(float64(n))
}

// GinMiddleware HTTP 指标中间件
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler Prometheus 抓取端点
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
