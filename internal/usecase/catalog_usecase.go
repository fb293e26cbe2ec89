package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tradequote/internal/domain/entities"
	"tradequote/internal/domain/errs"
	"tradequote/internal/usecase/interfaces"
)

var (
	ErrSegmentNotFound    = fmt.Errorf("%w: segment not found", errs.ErrNotFound)
	ErrInvalidSegment     = errs.Invalid("segment", "segment is required")
	ErrInvalidProjectSqft = errs.Invalid("project_sqft", "valid project size (sqft) is required")
)

// ICatalogUseCase exposes the trade segment catalog and its benchmark.
type ICatalogUseCase interface {
	ListSegments(ctx context.Context) ([]entities.Segment, error)
	ListPhases(ctx context.Context) ([]entities.SegmentPhase, error)
	GetSegment(ctx context.Context, id string) (entities.Segment, error)
	Compute(ctx context.Context, segmentID string, projectSqft float64) (entities.BenchmarkResult, error)
}

type CatalogUseCase struct {
	repo interfaces.ISegmentRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ISegmentRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListSegments(ctx context.Context) ([]entities.Segment, error) {
	segments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].PhaseOrder != segments[j].PhaseOrder {
			return segments[i].PhaseOrder < segments[j].PhaseOrder
		}
		return segments[i].Name < segments[j].Name
	})
	return segments, nil
}

// ListPhases groups the catalog by phase, ordered by phase order.
func (u *CatalogUseCase) ListPhases(ctx context.Context) ([]entities.SegmentPhase, error) {
	segments, err := u.ListSegments(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*entities.SegmentPhase)
	phases := make([]*entities.SegmentPhase, 0)
	for _, s := range segments {
		name := s.Phase
		if name == "" {
			name = "Other"
		}
		p, ok := byName[name]
		if !ok {
			order := s.PhaseOrder
			if s.Phase == "" && order == 0 {
				order = 99
			}
			p = &entities.SegmentPhase{Name: name, Order: order}
			byName[name] = p
			phases = append(phases, p)
		}
		p.Segments = append(p.Segments, s)
	}
	sort.SliceStable(phases, func(i, j int) bool { return phases[i].Order < phases[j].Order })

	out := make([]entities.SegmentPhase, 0, len(phases))
	for _, p := range phases {
		out = append(out, *p)
	}
	return out, nil
}

func (u *CatalogUseCase) GetSegment(ctx context.Context, id string) (entities.Segment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Segment{}, ErrInvalidSegment
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Segment{}, err
	}
	if s.ID == "" {
		return entities.Segment{}, ErrSegmentNotFound
	}
	return s, nil
}

// Compute returns the catalog benchmark for a project size. It has no side
// effects.
func (u *CatalogUseCase) Compute(ctx context.Context, segmentID string, projectSqft float64) (entities.BenchmarkResult, error) {
	if projectSqft <= 0 {
		return entities.BenchmarkResult{}, ErrInvalidProjectSqft
	}
	s, err := u.GetSegment(ctx, segmentID)
	if err != nil {
		return entities.BenchmarkResult{}, err
	}
	return s.Benchmark(projectSqft), nil
}
