package search

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/internal/options"
)

const defaultDraws = 1000

// RandomSearch draws independent uniformly-random parameter vectors from a
// bounded box and reports the one with the lowest loss.
type RandomSearch struct {
	lower []float64
	upper []float64
	draws int
	seed  int64
}

var _ Minimizer = (*RandomSearch)(nil)

// RandomSearchOption is a functional option for RandomSearch.
type RandomSearchOption = options.Option[*RandomSearch]

// WithDraws sets the number of random parameter vectors to score.
// Defaults to 1000. Must be at least 1.
func WithDraws(n int) RandomSearchOption {
	return options.New(func(rs *RandomSearch) error {
		if n < 1 {
			return errs.ErrNoSamples
		}
		rs.draws = n

		return nil
	})
}

// WithSeed sets the random seed. The search is fully deterministic for a
// fixed seed; the default seed is 1.
func WithSeed(seed int64) RandomSearchOption {
	return options.NoError(func(rs *RandomSearch) {
		rs.seed = seed
	})
}

// NewRandomSearch creates a random search over the box defined by the
// per-dimension lower and upper bounds.
//
// Parameters:
//   - lower: Lower bound per parameter dimension
//   - upper: Upper bound per parameter dimension (upper[i] >= lower[i])
//   - opts: Optional configuration (WithDraws, WithSeed)
//
// Returns:
//   - *RandomSearch: The configured strategy
//   - error: Invalid bounds or option error
func NewRandomSearch(lower, upper []float64, opts ...RandomSearchOption) (*RandomSearch, error) {
	if len(lower) == 0 || len(lower) != len(upper) {
		return nil, fmt.Errorf("bounds must be non-empty and equal length (%d vs %d): %w",
			len(lower), len(upper), errs.ErrInvalidBounds)
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("dimension %d has lower %v > upper %v: %w",
				i, lower[i], upper[i], errs.ErrInvalidBounds)
		}
	}

	lo := make([]float64, len(lower))
	hi := make([]float64, len(upper))
	copy(lo, lower)
	copy(hi, upper)

	rs := &RandomSearch{
		lower: lo,
		upper: hi,
		draws: defaultDraws,
		seed:  1,
	}
	if err := options.Apply(rs, opts...); err != nil {
		return nil, err
	}

	return rs, nil
}

// Minimize scores the configured number of uniform draws and returns the
// minimum. The result's loss is no greater than that of any individual
// draw; Converged is always false since random search has no termination
// criterion beyond exhausting its draws.
func (rs *RandomSearch) Minimize(objective Objective) (Result, error) {
	rng := rand.New(rand.NewSource(rs.seed))

	dim := len(rs.lower)
	params := make([]float64, dim)
	best := make([]float64, dim)
	bestLoss := math.Inf(1)

	for draw := 0; draw < rs.draws; draw++ {
		for i := range params {
			params[i] = rs.lower[i] + rng.Float64()*(rs.upper[i]-rs.lower[i])
		}

		if l := objective(params); l < bestLoss {
			bestLoss = l
			copy(best, params)
		}
	}

	return Result{
		Params:      best,
		Loss:        bestLoss,
		Evaluations: rs.draws,
		Converged:   false,
	}, nil
}
