package interfaces

import (
	"context"

	"tradequote/internal/domain/entities"
)

//go:generate mockgen -source=segment_repository_interface.go -destination=mocks/mock_segment_repository_interface.go -package=mock_interfaces

// ISegmentRepository reads the trade segment catalog. GetByID returns a zero
// Segment when the id is unknown.
type ISegmentRepository interface {
	List(ctx context.Context) ([]entities.Segment, error)
	GetByID(ctx context.Context, id string) (entities.Segment, error)
}
