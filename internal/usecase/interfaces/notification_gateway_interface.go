package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_gateway_interface.go -destination=mocks/mock_notification_gateway_interface.go -package=mock_interfaces

// LeadNotification is the content of a vendor lead email. ImpressionKey
// identifies the billed impression and doubles as the provider idempotency key.
type LeadNotification struct {
	ImpressionKey          string
	VendorEmail            string
	VendorCompanyName      string
	CustomerName           string
	CustomerEmail          string
	SegmentName            string
	ProjectSqft            float64
	ProjectLocation        string
	ProjectName            string
	QuotedRate             float64
	QuotedTotal            float64
	AdditionalRequirements string
}

type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryDisabled  DeliveryStatus = "disabled"
)

type DeliveryReceipt struct {
	Status    DeliveryStatus
	MessageID string
	SentAt    time.Time
}

// INotificationGateway sends vendor lead emails. Callers invoke it at most
// once per impression; implementations must not retry.
type INotificationGateway interface {
	NotifyVendorLead(ctx context.Context, n LeadNotification) (DeliveryReceipt, error)
}
