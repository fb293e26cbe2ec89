package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// VendorPayment records a vendor settling its lead balance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI vendor_email-index: vendor_email
//
// ProviderPayloadRaw keeps the Mercado Pago response body for audit.
type VendorPayment struct {
	ID            string        `json:"id"`
	VendorEmail   string        `json:"vendor_email"`
	Amount        float64       `json:"amount"`
	ImpressionIDs []string      `json:"impression_ids"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any  `json:"provider_payload,omitempty"`
}
