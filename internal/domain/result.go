package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vecalc/vector-calculator/pkg/vec2"
)

// PairResult holds every derived quantity for a single vector pair
type PairResult struct {
	Name       string   `json:"name"`
	A          vec2.Vec `json:"a"`
	B          vec2.Vec `json:"b"`
	Expression string   `json:"expression"`

	Dot          decimal.Decimal `json:"dot"`
	Cross        decimal.Decimal `json:"cross"`
	NormSquaredA decimal.Decimal `json:"norm_squared_a"`
	NormSquaredB decimal.Decimal `json:"norm_squared_b"`

	// Orthogonal is true when the dot product is zero and neither
	// operand is the zero vector.
	Orthogonal bool `json:"orthogonal"`
}

// BatchResult is the complete output for one calculation run
type BatchResult struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	Pairs           []PairResult    `json:"pairs"`
	TotalDot        decimal.Decimal `json:"total_dot"`
	OrthogonalCount int             `json:"orthogonal_count"`

	// Precision is a display hint for formatters, carried over from the
	// input settings. Zero means exact, untrimmed rendering.
	Precision int32 `json:"-"`
}
