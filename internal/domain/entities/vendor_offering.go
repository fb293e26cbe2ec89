package entities

import (
	"slices"
	"time"
)

// VendorOffering is a vendor's willingness to quote one segment in a set of
// countries and regions.
//
// Storage model (Postgres): table vendor_services, PK id,
// UNIQUE (user_email, segment).
type VendorOffering struct {
	ID                 string    `json:"id"`
	UserEmail          string    `json:"user_email"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description,omitempty"`
	Segment            string    `json:"segment"`
	CountriesServed    []string  `json:"countries_served"`
	RegionsServed      []string  `json:"regions_served"`
	PricingRules       string    `json:"pricing_rules,omitempty"`
	LeadTime           string    `json:"lead_time,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Serves applies the location rules: the country must be listed, and the
// region only filters when both the offering and the request name one. An
// empty region list covers the whole country.
func (o VendorOffering) Serves(country, region string) bool {
	if !slices.Contains(o.CountriesServed, country) {
		return false
	}
	if region == "" || len(o.RegionsServed) == 0 {
		return true
	}
	return slices.Contains(o.RegionsServed, region)
}

func (o VendorOffering) Summary() MatchedVendor {
	return MatchedVendor{UserEmail: o.UserEmail, CompanyName: o.CompanyName}
}

// OfferingPatch carries the mutable fields of an offering; nil means unchanged.
type OfferingPatch struct {
	CompanyName        *string
	CompanyDescription *string
	CountriesServed    []string
	RegionsServed      []string
	PricingRules       *string
	LeadTime           *string
	Notes              *string
	IsActive           *bool
}

func (p OfferingPatch) Apply(o VendorOffering) VendorOffering {
	if p.CompanyName != nil {
		o.CompanyName = *p.CompanyName
	}
	if p.CompanyDescription != nil {
		o.CompanyDescription = *p.CompanyDescription
	}
	if p.CountriesServed != nil {
		o.CountriesServed = p.CountriesServed
	}
	if p.RegionsServed != nil {
		o.RegionsServed = p.RegionsServed
	}
	if p.PricingRules != nil {
		o.PricingRules = *p.PricingRules
	}
	if p.LeadTime != nil {
		o.LeadTime = *p.LeadTime
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.IsActive != nil {
		o.IsActive = *p.IsActive
	}
	return o
}
