package interfaces

import (
	"context"
	"time"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=impression_repository_interface.go -destination=mocks/mock_impression_repository_interface.go -package=mock_interfaces

// IImpressionRepository abstracts persistence of billing impressions.
//
// InsertIfAbsent must be atomic on the (project, segment, vendor offering) key:
// concurrent inserts of the same key yield exactly one InsertCreated.
type IImpressionRepository interface {
	InsertIfAbsent(ctx context.Context, imp entities.QuoteImpression) (entities.InsertResult, error)
	UpdateNotificationStatus(ctx context.Context, dedupKey string, status entities.NotificationStatus, sentAt *time.Time) error
	UpdateBillingStatus(ctx context.Context, dedupKey string, from []entities.BillingStatus, to entities.BillingStatus) (bool, error)
	ListByVendorEmail(ctx context.Context, vendorEmail string) ([]entities.QuoteImpression, error)
}
