package interfaces

import (
	"context"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=vendor_payment_repository_interface.go -destination=mocks/mock_vendor_payment_repository_interface.go -package=mock_interfaces

// IVendorPaymentRepository abstracts DynamoDB persistence for VendorPayment.
type IVendorPaymentRepository interface {
	Create(ctx context.Context, p entities.VendorPayment) (entities.VendorPayment, error)
	GetByID(ctx context.Context, id string) (entities.VendorPayment, error)
	ListByVendorEmail(ctx context.Context, vendorEmail string) ([]entities.VendorPayment, error)
}
