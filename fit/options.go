package fit

import (
	"fmt"

	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/internal/options"
	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
)

// Strategy selects how a candidate's coefficients are searched for.
type Strategy int

const (
	// StrategyLeastSquares solves the normal equations exactly. Default.
	StrategyLeastSquares Strategy = iota
	// StrategyRandomSearch scores uniform random draws from a bounded box.
	StrategyRandomSearch
	// StrategyNelderMead runs derivative-free simplex descent from the
	// zero vector. Finds a local optimum only.
	StrategyNelderMead
)

// strategyNames maps Strategy to their string representations.
var strategyNames = map[Strategy]string{
	StrategyLeastSquares: "least-squares",
	StrategyRandomSearch: "random-search",
	StrategyNelderMead:   "nelder-mead",
}

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	if name, exists := strategyNames[s]; exists {
		return name
	}

	return "unknown"
}

// config holds the fit configuration assembled from options.
type config struct {
	metric        loss.Metric
	families      []model.Family
	strategy      Strategy
	seed          int64
	draws         int
	lower, upper  float64
	maxIterations int
	tolerance     float64
	restarts      int
}

func defaultConfig() config {
	return config{
		metric:   loss.MetricRMSE,
		families: []model.Family{model.FamilyLinear, model.FamilyQuadratic},
		strategy: StrategyLeastSquares,
		seed:     1,
		draws:    2000,
		lower:    -10,
		upper:    10,
	}
}

// Option is a functional option for Fit.
type Option = options.Option[*config]

// WithMetric sets the loss metric candidates are scored and ranked with.
// Defaults to loss.MetricRMSE.
func WithMetric(m loss.Metric) Option {
	return options.New(func(cfg *config) error {
		if !m.Valid() {
			return fmt.Errorf("metric %d is not defined", m)
		}
		cfg.metric = m

		return nil
	})
}

// WithFamilies restricts the candidate model families.
// Defaults to linear and quadratic.
func WithFamilies(families ...model.Family) Option {
	return options.New(func(cfg *config) error {
		if len(families) == 0 {
			return errs.ErrNoCandidates
		}
		for _, f := range families {
			if f.String() == "unknown" {
				return fmt.Errorf("family %d: %w", f, errs.ErrUnknownFamily)
			}
		}
		cfg.families = append([]model.Family(nil), families...)

		return nil
	})
}

// WithStrategy sets the coefficient search strategy.
// Defaults to StrategyLeastSquares.
func WithStrategy(s Strategy) Option {
	return options.New(func(cfg *config) error {
		if _, exists := strategyNames[s]; !exists {
			return fmt.Errorf("strategy %d is not defined", s)
		}
		cfg.strategy = s

		return nil
	})
}

// WithSeed sets the seed for the stochastic strategies (random search
// draws, Nelder-Mead restart jitter). Defaults to 1.
func WithSeed(seed int64) Option {
	return options.NoError(func(cfg *config) {
		cfg.seed = seed
	})
}

// WithDraws sets the draw count for StrategyRandomSearch.
// Defaults to 2000.
func WithDraws(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 1 {
			return errs.ErrNoSamples
		}
		cfg.draws = n

		return nil
	})
}

// WithBounds sets the per-coefficient search interval for
// StrategyRandomSearch. Defaults to [-10, 10].
func WithBounds(lower, upper float64) Option {
	return options.New(func(cfg *config) error {
		if lower > upper {
			return fmt.Errorf("lower %v > upper %v: %w", lower, upper, errs.ErrInvalidBounds)
		}
		cfg.lower = lower
		cfg.upper = upper

		return nil
	})
}

// WithMaxIterations caps the iteration budget of StrategyNelderMead.
// Defaults to the strategy's own default.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("max iterations must be at least 1, got %d", n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithTolerance sets the convergence tolerance of StrategyNelderMead.
// Defaults to the strategy's own default.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *config) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		cfg.tolerance = tol

		return nil
	})
}

// WithRestarts sets the number of jittered restarts for
// StrategyNelderMead. Defaults to 0.
func WithRestarts(n int) Option {
	return options.New(func(cfg *config) error {
		if n < 0 {
			return fmt.Errorf("restarts must be non-negative, got %d", n)
		}
		cfg.restarts = n

		return nil
	})
}
