package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	VisitsTracked   *prometheus.CounterVec
	ChatReplies     *prometheus.CounterVec
	OrdersCreated   prometheus.Counter
	AnalyticsErrors prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rblc_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rblc_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		VisitsTracked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rblc_visits_tracked_total",
				Help: "Page visits received, by whether they were stored or deduplicated",
			},
			[]string{"result"},
		),
		ChatReplies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rblc_chat_replies_total",
				Help: "AI assistant replies, by whether they were escalated to an admin",
			},
			[]string{"escalated"},
		),
		OrdersCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rblc_orders_created_total",
				Help: "Total number of part requests created",
			},
		),
		AnalyticsErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rblc_analytics_errors_total",
				Help: "Dashboard snapshots that failed because the visit store was unavailable",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.VisitsTracked,
		m.ChatReplies,
		m.OrdersCreated,
		m.AnalyticsErrors,
	)

	return m
}

// The recorders below are safe on a nil *Metrics so handlers work without
// instrumentation in tests.

func (m *Metrics) VisitTracked(recorded bool) {
	if m == nil {
		return
	}
	result := "stored"
	if !recorded {
		result = "deduplicated"
	}
	m.VisitsTracked.WithLabelValues(result).Inc()
}

func (m *Metrics) ChatReplied(escalated bool) {
	if m == nil {
		return
	}
	m.ChatReplies.WithLabelValues(strconv.FormatBool(escalated)).Inc()
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

func (m *Metrics) AnalyticsFailed() {
	if m == nil {
		return
	}
	m.AnalyticsErrors.Inc()
}

// GinMiddleware instruments requests by route template, so path parameters
// do not create new series. Unmatched routes are recorded as "unmatched".
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
