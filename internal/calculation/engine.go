package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vecalc/vector-calculator/internal/domain"
)

// Engine orchestrates all vector calculations
type Engine struct {
	Logger Logger
}

// NewEngine creates a new calculation engine
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// WithLogger sets the engine's logger and returns the engine
func (e *Engine) WithLogger(logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
	return e
}

// ComputePair derives every quantity for a single vector pair
func (e *Engine) ComputePair(pair domain.VectorPair) domain.PairResult {
	dot := pair.A.Dot(pair.B)
	e.Logger.Infof("computed 2D dot product: %s", dot)

	result := domain.PairResult{
		Name:         pair.Name,
		A:            pair.A,
		B:            pair.B,
		Expression:   pair.A.DotExpression(pair.B),
		Dot:          dot,
		Cross:        pair.A.Cross(pair.B),
		NormSquaredA: pair.A.NormSquared(),
		NormSquaredB: pair.B.NormSquared(),
		Orthogonal:   dot.IsZero() && !pair.A.IsZero() && !pair.B.IsZero(),
	}
	e.Logger.Debugf("pair %q: cross=%s |a|²=%s |b|²=%s orthogonal=%t",
		pair.Name, result.Cross, result.NormSquaredA, result.NormSquaredB, result.Orthogonal)
	return result
}

// RunBatch computes results for every pair in the configuration
func (e *Engine) RunBatch(config *domain.Configuration) (*domain.BatchResult, error) {
	if config == nil || len(config.Pairs) == 0 {
		return nil, fmt.Errorf("no vector pairs to compute")
	}

	batch := &domain.BatchResult{
		GeneratedAt: nowFunc(),
		Pairs:       make([]domain.PairResult, 0, len(config.Pairs)),
		TotalDot:    decimal.Zero,
		Precision:   config.Settings.Precision,
	}
	for _, pair := range config.Pairs {
		result := e.ComputePair(pair)
		batch.Pairs = append(batch.Pairs, result)
		batch.TotalDot = batch.TotalDot.Add(result.Dot)
		if result.Orthogonal {
			batch.OrthogonalCount++
		}
	}
	e.Logger.Infof("batch complete: %d pairs, total dot %s, %d orthogonal",
		len(batch.Pairs), batch.TotalDot, batch.OrthogonalCount)
	return batch, nil
}
