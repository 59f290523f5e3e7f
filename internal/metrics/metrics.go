// Package metrics provides Prometheus metrics collection for the bagging service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PackingPassesTotal tracks packing passes by outcome.
	PackingPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_passes_total",
			Help: "Total number of packing passes",
		},
		[]string{"status"},
	)

	// PackingPassDuration tracks packing pass duration.
	PackingPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packing_pass_duration_seconds",
			Help:    "Packing pass duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// BagsCreatedTotal tracks bags created by fill status.
	BagsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bags_created_total",
			Help: "Total number of bags created",
		},
		[]string{"status"},
	)

	// BagsUntiedTotal tracks untied bags.
	BagsUntiedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bags_untied_total",
			Help: "Total number of bags untied",
		},
	)

	// TopUpMetersTotal tracks meterage taken from inventory, by mode.
	TopUpMetersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topup_meters_total",
			Help: "Total meters of thread taken from inventory for top-ups",
		},
		[]string{"mode"},
	)

	// UnpackableOrdersTotal tracks orders excluded from packing.
	UnpackableOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unpackable_orders_total",
			Help: "Total number of orders reported unpackable",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPackingPass records metrics for one packing pass.
func RecordPackingPass(duration time.Duration, status string) {
	PackingPassDuration.Observe(duration.Seconds())
	PackingPassesTotal.WithLabelValues(status).Inc()
}

// RecordBagCreated records a created bag by its fill status.
func RecordBagCreated(status string) {
	BagsCreatedTotal.WithLabelValues(status).Inc()
}

// RecordTopUp records meterage consumed from inventory.
func RecordTopUp(mode string, meters int) {
	TopUpMetersTotal.WithLabelValues(mode).Add(float64(meters))
}

// RecordUntie records an untied bag.
func RecordUntie() {
	BagsUntiedTotal.Inc()
}

// RecordUnpackable records orders reported unpackable.
func RecordUnpackable(count int) {
	UnpackableOrdersTotal.Add(float64(count))
}
