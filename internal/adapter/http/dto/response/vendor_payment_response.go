package response

import (
	"time"

	"tradequote/internal/domain/entities"
)

type VendorPaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	VendorEmail   string    `json:"vendor_email"`
	Amount        float64   `json:"amount"`
	ImpressionIDs []string  `json:"impression_ids"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `json:"status"`

	ProviderPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromVendorPayment(p entities.VendorPayment) VendorPaymentResponse {
	ids := p.ImpressionIDs
	if ids == nil {
		ids = []string{}
	}
	return VendorPaymentResponse{
		PaymentID:          p.ID,
		VendorEmail:        p.VendorEmail,
		Amount:             p.Amount,
		ImpressionIDs:      ids,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromVendorPayments(items []entities.VendorPayment) []VendorPaymentResponse {
	out := make([]VendorPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromVendorPayment(p))
	}
	return out
}
