package interfaces

import (
	"context"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=pricing_oracle_interface.go -destination=mocks/mock_pricing_oracle_interface.go -package=mock_interfaces

// PricingRequest is the project and vendor data sent to the pricing service.
type PricingRequest struct {
	Segment     string
	SegmentName string
	ProjectSqft float64
	City        string
	Region      string
	Country     string
	Options     map[string]any
	Vendors     []entities.VendorOffering
}

// IPricingOracle abstracts the LLM-backed pricing service.
type IPricingOracle interface {
	GenerateQuotes(ctx context.Context, req PricingRequest) ([]entities.VendorQuote, error)
}
