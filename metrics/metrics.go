// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records operational counters for the payment flow.
type Collector struct {
	sessionsCreated   prometheus.Counter
	paymentsCompleted prometheus.Counter
	revenue           prometheus.Counter
	checkoutFailures  prometheus.Counter
	httpStatus        *prometheus.CounterVec
	checkoutLatency   prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paybyphone_sessions_created_total",
			Help: "Parking sessions created.",
		}),
		paymentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paybyphone_payments_completed_total",
			Help: "Parking sessions marked paid.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paybyphone_revenue_eur_total",
			Help: "Revenue from paid sessions, in euros.",
		}),
		checkoutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paybyphone_checkout_failures_total",
			Help: "Failed checkout creations at the payment provider.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paybyphone_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		checkoutLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "paybyphone_checkout_latency_seconds",
			Help:    "Latency of checkout creation calls to the provider.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.sessionsCreated,
		c.paymentsCompleted,
		c.revenue,
		c.checkoutFailures,
		c.httpStatus,
		c.checkoutLatency,
	)

	return c
}

// RecordSessionCreated counts a new parking session.
func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

// RecordPaymentCompleted counts a settled session and its revenue.
func (c *Collector) RecordPaymentCompleted(amountEUR float64) {
	c.paymentsCompleted.Inc()
	c.revenue.Add(amountEUR)
}

// RecordCheckoutFailure counts a failed checkout creation.
func (c *Collector) RecordCheckoutFailure() {
	c.checkoutFailures.Inc()
}

// RecordHTTPStatus counts a response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordCheckoutLatency records the duration of a provider call.
func (c *Collector) RecordCheckoutLatency(d time.Duration) {
	c.checkoutLatency.Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
