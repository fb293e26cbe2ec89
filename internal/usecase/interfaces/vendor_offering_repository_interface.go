package interfaces

import (
	"context"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=vendor_offering_repository_interface.go -destination=mocks/mock_vendor_offering_repository_interface.go -package=mock_interfaces

// IVendorOfferingRepository abstracts Postgres persistence for vendor offerings.
//
// Create reports InsertAlreadyExists when the (user_email, segment) unique
// index rejects the row. Lookups by owner return a zero value when the row is
// missing or belongs to someone else.
type IVendorOfferingRepository interface {
	ListActiveBySegmentAndCountry(ctx context.Context, segment, country string) ([]entities.VendorOffering, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]entities.VendorOffering, error)
	GetByIDForOwner(ctx context.Context, id, userEmail string) (entities.VendorOffering, error)
	Create(ctx context.Context, o entities.VendorOffering) (entities.InsertResult, error)
	Update(ctx context.Context, o entities.VendorOffering) (entities.VendorOffering, error)
	Delete(ctx context.Context, id, userEmail string) (bool, error)
}
