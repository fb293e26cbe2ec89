package interfaces

import (
	"time"

	"tradequote/internal/domain/entities"
)

// IQuoteMetrics receives saga and billing observations.
type IQuoteMetrics interface {
	ObserveQuoteRequest(status entities.QuoteRequestStatus, elapsed time.Duration)
	ObservePricingFailure()
	ObserveImpression(result entities.ImpressionResult)
	ObserveNotification(status entities.NotificationStatus)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) ObserveQuoteRequest(entities.QuoteRequestStatus, time.Duration) {}
func (NopMetrics) ObservePricingFailure()                                         {}
func (NopMetrics) ObserveImpression(entities.ImpressionResult)                    {}
func (NopMetrics) ObserveNotification(entities.NotificationStatus)                {}
