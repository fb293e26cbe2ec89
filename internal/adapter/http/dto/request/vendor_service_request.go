package request

import (
	"strings"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase"
)

// CreateVendorServiceRequest registers a new offering for the calling vendor.
type CreateVendorServiceRequest struct {
	CompanyName        string   `json:"company_name" binding:"required"`
	CompanyDescription string   `json:"company_description"`
	Segment            string   `json:"segment" binding:"required"`
	CountriesServed    []string `json:"countries_served"`
	RegionsServed      []string `json:"regions_served"`
	PricingRules       string   `json:"pricing_rules"`
	LeadTime           string   `json:"lead_time"`
	Notes              string   `json:"notes"`
	IsActive           *bool    `json:"is_active"`
}

func (r CreateVendorServiceRequest) ToInput() usecase.CreateOfferingInput {
	return usecase.CreateOfferingInput{
		CompanyName:        strings.TrimSpace(r.CompanyName),
		CompanyDescription: strings.TrimSpace(r.CompanyDescription),
		Segment:            strings.TrimSpace(r.Segment),
		CountriesServed:    upperAll(r.CountriesServed),
		RegionsServed:      upperAll(r.RegionsServed),
		PricingRules:       r.PricingRules,
		LeadTime:           r.LeadTime,
		Notes:              r.Notes,
		IsActive:           r.IsActive,
	}
}

// UpdateVendorServiceRequest only touches the fields that are present.
type UpdateVendorServiceRequest struct {
	CompanyName        *string  `json:"company_name"`
	CompanyDescription *string  `json:"company_description"`
	CountriesServed    []string `json:"countries_served"`
	RegionsServed      []string `json:"regions_served"`
	PricingRules       *string  `json:"pricing_rules"`
	LeadTime           *string  `json:"lead_time"`
	Notes              *string  `json:"notes"`
	IsActive           *bool    `json:"is_active"`
}

func (r UpdateVendorServiceRequest) ToPatch() entities.OfferingPatch {
	return entities.OfferingPatch{
		CompanyName:        r.CompanyName,
		CompanyDescription: r.CompanyDescription,
		CountriesServed:    upperAll(r.CountriesServed),
		RegionsServed:      upperAll(r.RegionsServed),
		PricingRules:       r.PricingRules,
		LeadTime:           r.LeadTime,
		Notes:              r.Notes,
		IsActive:           r.IsActive,
	}
}

func upperAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
