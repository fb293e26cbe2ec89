package entities

import "github.com/shopspring/decimal"

const DefaultBenchmarkUnit = "$/sf"

// Segment is a trade category of the pre-seeded catalog with its published
// price-per-area band.
//
// Storage model (Postgres): table segments, PK id.
type Segment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phase         string  `json:"phase"`
	PhaseOrder    int     `json:"phase_order"`
	BenchmarkLow  float64 `json:"benchmark_low"`
	BenchmarkHigh float64 `json:"benchmark_high"`
	BenchmarkUnit string  `json:"benchmark_unit"`
	Notes         string  `json:"notes,omitempty"`
}

// SegmentPhase groups catalog segments for display.
type SegmentPhase struct {
	Name     string    `json:"name"`
	Order    int       `json:"order"`
	Segments []Segment `json:"segments"`
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// BenchmarkResult is the catalog estimate for a project size. It is embedded in
// the quote request and never stored on its own.
type BenchmarkResult struct {
	SegmentID     string     `json:"segment_id"`
	SegmentName   string     `json:"segment_name"`
	BenchmarkUnit string     `json:"benchmark_unit"`
	RangePerSF    PriceRange `json:"range_per_sf"`
	RangeTotal    PriceRange `json:"range_total"`
	ProjectSqft   float64    `json:"project_sqft"`
	Notes         string     `json:"notes,omitempty"`
}

// Benchmark multiplies the published band by the project area. Totals are
// rounded to cents.
func (s Segment) Benchmark(projectSqft float64) BenchmarkResult {
	unit := s.BenchmarkUnit
	if unit == "" {
		unit = DefaultBenchmarkUnit
	}
	return BenchmarkResult{
		SegmentID:     s.ID,
		SegmentName:   s.Name,
		BenchmarkUnit: unit,
		RangePerSF:    PriceRange{Low: s.BenchmarkLow, High: s.BenchmarkHigh},
		RangeTotal: PriceRange{
			Low:  MulRound(s.BenchmarkLow, projectSqft),
			High: MulRound(s.BenchmarkHigh, projectSqft),
		},
		ProjectSqft: projectSqft,
		Notes:       s.Notes,
	}
}

// MulRound returns a*b rounded half away from zero to 2 decimals.
func MulRound(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}
