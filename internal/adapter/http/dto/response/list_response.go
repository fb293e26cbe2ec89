package response

import "tradequote/internal/domain/entities"

type SegmentsResponse struct {
	Segments []entities.Segment `json:"segments"`
}

type PhasesResponse struct {
	Phases []entities.SegmentPhase `json:"phases"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewList never renders a null items array.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}
