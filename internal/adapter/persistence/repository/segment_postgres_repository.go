package repository

import (
	"context"
	"errors"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const segmentColumns = `
	id, name, COALESCE(phase, ''), COALESCE(phase_order, 0),
	benchmark_low, benchmark_high, COALESCE(benchmark_unit, ''), COALESCE(notes, '')`

// SegmentPostgresRepository reads the pre-seeded segments catalog.
type SegmentPostgresRepository struct {
	db PgxAPI
}

var _ interfaces.ISegmentRepository = (*SegmentPostgresRepository)(nil)

func NewSegmentPostgresRepository(db PgxAPI) *SegmentPostgresRepository {
	return &SegmentPostgresRepository{db: db}
}

func (r *SegmentPostgresRepository) List(ctx context.Context) ([]entities.Segment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+segmentColumns+` FROM segments ORDER BY phase_order, name`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSegment)
}

func (r *SegmentPostgresRepository) GetByID(ctx context.Context, id string) (entities.Segment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+segmentColumns+` FROM segments WHERE id = $1`, id)

	s, err := scanSegment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Segment{}, nil
	}
	return s, err
}

func scanSegment(row pgx.Row) (entities.Segment, error) {
	var s entities.Segment
	err := row.Scan(
		&s.ID, &s.Name, &s.Phase, &s.PhaseOrder,
		&s.BenchmarkLow, &s.BenchmarkHigh, &s.BenchmarkUnit, &s.Notes,
	)
	if err != nil {
		return entities.Segment{}, err
	}
	return s, nil
}
