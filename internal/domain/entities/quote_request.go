package entities

import "time"

// QuoteRequestStatus is the saga state of a quote request.
//
// States only move forward:
//
//	matching_vendors -> generating_quotes -> completed
//	any non-terminal state -> failed
type QuoteRequestStatus string

const (
	QuoteStatusMatchingVendors  QuoteRequestStatus = "matching_vendors"
	QuoteStatusGeneratingQuotes QuoteRequestStatus = "generating_quotes"
	QuoteStatusCompleted        QuoteRequestStatus = "completed"
	QuoteStatusFailed           QuoteRequestStatus = "failed"
)

func (s QuoteRequestStatus) IsTerminal() bool {
	return s == QuoteStatusCompleted || s == QuoteStatusFailed
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s QuoteRequestStatus) CanTransitionTo(next QuoteRequestStatus) bool {
	switch s {
	case QuoteStatusMatchingVendors:
		return next == QuoteStatusGeneratingQuotes || next == QuoteStatusFailed
	case QuoteStatusGeneratingQuotes:
		return next == QuoteStatusCompleted || next == QuoteStatusFailed
	}
	return false
}

// MatchedVendor is the audit summary persisted once vendors are matched.
type MatchedVendor struct {
	UserEmail   string `json:"user_email"`
	CompanyName string `json:"company_name"`
}

// VendorQuote is a per-vendor price computed by the pricing oracle, enriched
// with contact fields from the matched offering.
type VendorQuote struct {
	VendorServiceID    string  `json:"vendor_service_id,omitempty"`
	UserEmail          string  `json:"user_email"`
	CompanyName        string  `json:"company_name"`
	ContactEmail       string  `json:"contact_email,omitempty"`
	CompanyDescription string  `json:"company_description,omitempty"`
	BaseRatePerSF      float64 `json:"base_rate_per_sf,omitempty"`
	FinalRatePerSF     float64 `json:"final_rate_per_sf"`
	Total              float64 `json:"total"`
	LeadTime           string  `json:"lead_time,omitempty"`
	Explanation        string  `json:"explanation,omitempty"`
}

// QuoteRequest is the durable record of one customer quote request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index: project_id / created_at
type QuoteRequest struct {
	ID                string             `json:"id"`
	ProjectID         string             `json:"project_id"`
	ChatID            string             `json:"chat_id,omitempty"`
	RequestedByUserID string             `json:"requested_by_user_id"`
	Segment           string             `json:"segment"`
	ProjectSqft       float64            `json:"project_sqft"`
	Options           map[string]any     `json:"options,omitempty"`
	AddressSnapshot   Address            `json:"address_snapshot"`
	Status            QuoteRequestStatus `json:"status"`
	MatchedVendors    []MatchedVendor    `json:"matched_vendors,omitempty"`
	VendorQuotes      []VendorQuote      `json:"vendor_quotes,omitempty"`
	Benchmark         *BenchmarkResult   `json:"iivy_benchmark,omitempty"`
	ErrorMessage      string             `json:"error_message,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
}

// AdditionalRequirements returns the free-text requirements option, if any.
func (q QuoteRequest) AdditionalRequirements() string {
	if q.Options == nil {
		return ""
	}
	if s, ok := q.Options["additional_requirements"].(string); ok {
		return s
	}
	return ""
}
