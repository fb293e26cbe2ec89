package entities

import (
	"strings"
	"time"
)

type BillingStatus string

const (
	BillingStatusPending  BillingStatus = "pending"
	BillingStatusInvoiced BillingStatus = "invoiced"
	BillingStatusPaid     BillingStatus = "paid"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// QuoteImpression is the billable event of a vendor quote shown to a customer.
//
// Storage model (DynamoDB):
//   - PK: dedup_key = project_id#segment#vendor_service_id, written with
//     attribute_not_exists so a second insert for the same triple is rejected
//   - GSI vendor_email-index: vendor_email / created_at
type QuoteImpression struct {
	ID                 string             `json:"id"`
	QuoteRequestID     string             `json:"quote_request_id"`
	ProjectID          string             `json:"project_id"`
	Segment            string             `json:"segment"`
	VendorServiceID    string             `json:"vendor_service_id"`
	VendorEmail        string             `json:"vendor_email"`
	VendorCompanyName  string             `json:"vendor_company_name"`
	CustomerUserID     string             `json:"customer_user_id"`
	CustomerEmail      string             `json:"customer_email"`
	CustomerName       string             `json:"customer_name,omitempty"`
	ProjectName        string             `json:"project_name"`
	ProjectLocation    string             `json:"project_location"`
	ProjectSqft        float64            `json:"project_sqft"`
	QuotedRatePerSF    float64            `json:"quoted_rate_per_sf"`
	QuotedTotal        float64            `json:"quoted_total"`
	AmountCharged      float64            `json:"amount_charged"`
	BillingStatus      BillingStatus      `json:"billing_status"`
	NotificationStatus NotificationStatus `json:"email_status"`
	EmailSentAt        *time.Time         `json:"email_sent_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// ImpressionDedupKey is the billing uniqueness key.
func ImpressionDedupKey(projectID, segment, vendorServiceID string) string {
	return strings.Join([]string{projectID, segment, vendorServiceID}, "#")
}

func (i QuoteImpression) DedupKey() string {
	return ImpressionDedupKey(i.ProjectID, i.Segment, i.VendorServiceID)
}

// InsertResult is the outcome of an atomic insert-if-absent.
type InsertResult string

const (
	InsertCreated       InsertResult = "created"
	InsertAlreadyExists InsertResult = "already_exists"
)

// ImpressionResult classifies what the ledger did for one vendor quote.
type ImpressionResult string

const (
	ImpressionCreated   ImpressionResult = "created"
	ImpressionDuplicate ImpressionResult = "duplicate"
	ImpressionSkipped   ImpressionResult = "skipped"
	ImpressionError     ImpressionResult = "error"
)

type ImpressionOutcome struct {
	VendorServiceID    string             `json:"vendor_service_id,omitempty"`
	VendorEmail        string             `json:"vendor_email,omitempty"`
	Result             ImpressionResult   `json:"result"`
	ImpressionID       string             `json:"impression_id,omitempty"`
	NotificationStatus NotificationStatus `json:"email_status,omitempty"`
	Error              string             `json:"error,omitempty"`
}

// ProjectSnapshot is the project data copied onto impressions.
type ProjectSnapshot struct {
	ProjectID              string
	ProjectName            string
	Segment                string
	SegmentName            string
	ProjectSqft            float64
	Location               string
	AdditionalRequirements string
}
