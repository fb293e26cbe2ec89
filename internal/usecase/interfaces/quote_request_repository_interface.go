package interfaces

import (
	"context"
	"errors"
	"time"

	"tradequote/internal/domain/entities"
)

// ErrTransitionRejected is returned when a status update does not find the
// request in an allowed source state.
var ErrTransitionRejected = errors.New("quote request transition rejected")

//go:generate mockgen -source=quote_request_repository_interface.go -destination=mocks/mock_quote_request_repository_interface.go -package=mock_interfaces

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// The Mark* methods are conditional on the current status so the saga can only
// move forward.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.QuoteRequest, error)
	MarkGeneratingQuotes(ctx context.Context, id string, matched []entities.MatchedVendor) error
	MarkCompleted(ctx context.Context, id string, quotes []entities.VendorQuote, benchmark entities.BenchmarkResult, completedAt time.Time) error
	MarkFailed(ctx context.Context, id string, message string) error
}
