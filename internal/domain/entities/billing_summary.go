package entities

import "github.com/shopspring/decimal"

type LeadsByStatus struct {
	Pending  int `json:"pending"`
	Invoiced int `json:"invoiced"`
	Paid     int `json:"paid"`
}

type BillingSummary struct {
	TotalLeads    int           `json:"total_leads"`
	TotalCharged  float64       `json:"total_charged"`
	TotalPaid     float64       `json:"total_paid"`
	BalanceDue    float64       `json:"balance_due"`
	LeadsByStatus LeadsByStatus `json:"leads_by_status"`
}

// SummarizeImpressions totals the charges of a vendor's impressions.
func SummarizeImpressions(items []QuoteImpression) BillingSummary {
	charged := decimal.Zero
	paid := decimal.Zero
	var s BillingSummary
	for _, it := range items {
		amount := decimal.NewFromFloat(it.AmountCharged)
		charged = charged.Add(amount)
		switch it.BillingStatus {
		case BillingStatusPending:
			s.LeadsByStatus.Pending++
		case BillingStatusInvoiced:
			s.LeadsByStatus.Invoiced++
		case BillingStatusPaid:
			s.LeadsByStatus.Paid++
			paid = paid.Add(amount)
		}
	}
	s.TotalLeads = len(items)
	s.TotalCharged = charged.Round(2).InexactFloat64()
	s.TotalPaid = paid.Round(2).InexactFloat64()
	s.BalanceDue = charged.Sub(paid).Round(2).InexactFloat64()
	return s
}
