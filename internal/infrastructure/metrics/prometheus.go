// Package metrics exposes saga and billing counters to Prometheus.
package metrics

import (
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tradequote"

type QuoteMetrics struct {
	quoteRequests   *prometheus.CounterVec
	sagaDuration    *prometheus.HistogramVec
	pricingFailures prometheus.Counter
	impressions     *prometheus.CounterVec
	notifications   *prometheus.CounterVec
}

var _ interfaces.IQuoteMetrics = (*QuoteMetrics)(nil)

// NewQuoteMetrics registers the collectors on reg; pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	f := promauto.With(reg)
	return &QuoteMetrics{
		quoteRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quotes",
			Name:      "requests_total",
			Help:      "Quote requests by final status",
		}, []string{"status"}),
		sagaDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quotes",
			Name:      "request_duration_seconds",
			Help:      "Time from request creation to final status",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
		}, []string{"status"}),
		pricingFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "failures_total",
			Help:      "Pricing oracle calls that failed or timed out",
		}),
		impressions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "impressions_total",
			Help:      "Impression ledger outcomes per vendor quote",
		}, []string{"result"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "notifications_total",
			Help:      "Vendor lead emails by delivery status",
		}, []string{"status"}),
	}
}

func (m *QuoteMetrics) ObserveQuoteRequest(status entities.QuoteRequestStatus, elapsed time.Duration) {
	m.quoteRequests.WithLabelValues(string(status)).Inc()
	m.sagaDuration.WithLabelValues(string(status)).Observe(elapsed.Seconds())
}

func (m *QuoteMetrics) ObservePricingFailure() {
	m.pricingFailures.Inc()
}

func (m *QuoteMetrics) ObserveImpression(result entities.ImpressionResult) {
	m.impressions.WithLabelValues(string(result)).Inc()
}

func (m *QuoteMetrics) ObserveNotification(status entities.NotificationStatus) {
	m.notifications.WithLabelValues(string(status)).Inc()
}
