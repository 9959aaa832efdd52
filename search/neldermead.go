package search

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/internal/options"
)

// Nelder-Mead simplex coefficients (the standard values).
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

const (
	defaultTolerance = 1e-9
	defaultStep      = 1.0
)

// NelderMead minimizes an objective with derivative-free simplex descent
// from a fixed starting vector.
//
// The search terminates at a local optimum: there is no guarantee it finds
// the global one, and the outcome is sensitive to the starting point,
// increasingly so as the parameter dimensionality grows. Use WithRestarts
// to rerun from jittered starts and keep the best outcome.
type NelderMead struct {
	start    []float64
	maxIter  int
	tol      float64
	step     float64
	restarts int
	seed     int64
}

var _ Minimizer = (*NelderMead)(nil)

// NelderMeadOption is a functional option for NelderMead.
type NelderMeadOption = options.Option[*NelderMead]

// WithMaxIterations sets the iteration budget per run.
// Defaults to 200 times the parameter dimensionality.
func WithMaxIterations(n int) NelderMeadOption {
	return options.New(func(nm *NelderMead) error {
		if n < 1 {
			return fmt.Errorf("max iterations must be at least 1, got %d", n)
		}
		nm.maxIter = n

		return nil
	})
}

// WithTolerance sets the convergence tolerance: a run stops once the loss
// spread across the simplex drops below it. Defaults to 1e-9.
func WithTolerance(tol float64) NelderMeadOption {
	return options.New(func(nm *NelderMead) error {
		if tol <= 0 || math.IsNaN(tol) {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		nm.tol = tol

		return nil
	})
}

// WithInitialStep sets the edge length of the initial simplex around the
// starting vector. Defaults to 1.0.
func WithInitialStep(step float64) NelderMeadOption {
	return options.New(func(nm *NelderMead) error {
		if step <= 0 || math.IsNaN(step) {
			return fmt.Errorf("initial step must be positive, got %v", step)
		}
		nm.step = step

		return nil
	})
}

// WithRestarts sets the number of additional runs from jittered starting
// points. The best result across all runs is returned. Defaults to 0.
func WithRestarts(n int) NelderMeadOption {
	return options.New(func(nm *NelderMead) error {
		if n < 0 {
			return fmt.Errorf("restarts must be non-negative, got %d", n)
		}
		nm.restarts = n

		return nil
	})
}

// WithRestartSeed sets the seed for restart jitter. Defaults to 1.
func WithRestartSeed(seed int64) NelderMeadOption {
	return options.NoError(func(nm *NelderMead) {
		nm.seed = seed
	})
}

// NewNelderMead creates a simplex search starting from the given vector.
//
// Parameters:
//   - start: Initial parameter vector (copied)
//   - opts: Optional configuration (WithMaxIterations, WithTolerance,
//     WithInitialStep, WithRestarts, WithRestartSeed)
//
// Returns:
//   - *NelderMead: The configured strategy
//   - error: Empty start vector or option error
func NewNelderMead(start []float64, opts ...NelderMeadOption) (*NelderMead, error) {
	if len(start) == 0 {
		return nil, errs.ErrEmptyStart
	}

	s := make([]float64, len(start))
	copy(s, start)

	nm := &NelderMead{
		start: s,
		tol:   defaultTolerance,
		step:  defaultStep,
		seed:  1,
	}
	if err := options.Apply(nm, opts...); err != nil {
		return nil, err
	}
	if nm.maxIter == 0 {
		nm.maxIter = 200 * len(start)
	}

	return nm, nil
}

// Minimize runs the simplex descent (plus any configured restarts) and
// returns the best local optimum found.
func (nm *NelderMead) Minimize(objective Objective) (Result, error) {
	rng := rand.New(rand.NewSource(nm.seed))

	best := nm.run(objective, nm.start)

	for r := 0; r < nm.restarts; r++ {
		jittered := make([]float64, len(best.Params))
		for i, p := range best.Params {
			jittered[i] = p + rng.NormFloat64()*nm.step
		}

		candidate := nm.run(objective, jittered)
		candidate.Evaluations += best.Evaluations
		if candidate.Loss < best.Loss {
			best = candidate
		} else {
			best.Evaluations = candidate.Evaluations
		}
	}

	return best, nil
}

// vertex pairs a simplex point with its loss.
type vertex struct {
	params []float64
	loss   float64
}

// run performs one simplex descent from the given starting point.
func (nm *NelderMead) run(objective Objective, start []float64) Result {
	dim := len(start)
	evals := 0

	eval := func(p []float64) float64 {
		evals++
		l := objective(p)
		if math.IsNaN(l) {
			// Treat undefined losses as infinitely bad so the simplex
			// moves away from them instead of comparing against NaN.
			return math.Inf(1)
		}

		return l
	}

	// Initial simplex: the start plus one point stepped along each axis.
	simplex := make([]vertex, dim+1)
	for i := range simplex {
		p := make([]float64, dim)
		copy(p, start)
		if i > 0 {
			p[i-1] += nm.step
		}
		simplex[i] = vertex{params: p, loss: eval(p)}
	}

	centroid := make([]float64, dim)
	reflected := make([]float64, dim)
	expanded := make([]float64, dim)
	contracted := make([]float64, dim)

	converged := false
	for iter := 0; iter < nm.maxIter; iter++ {
		sort.Slice(simplex, func(a, b int) bool {
			return simplex[a].loss < simplex[b].loss
		})

		if lossSpread(simplex) < nm.tol {
			converged = true
			break
		}

		worst := simplex[dim]
		secondWorst := simplex[dim-1]

		// Centroid of all vertices except the worst.
		for j := range centroid {
			centroid[j] = 0
		}
		for _, v := range simplex[:dim] {
			for j, p := range v.params {
				centroid[j] += p
			}
		}
		for j := range centroid {
			centroid[j] /= float64(dim)
		}

		// Reflection.
		for j := range reflected {
			reflected[j] = centroid[j] + nmReflect*(centroid[j]-worst.params[j])
		}
		reflectedLoss := eval(reflected)

		switch {
		case reflectedLoss < simplex[0].loss:
			// Expansion.
			for j := range expanded {
				expanded[j] = centroid[j] + nmExpand*(reflected[j]-centroid[j])
			}
			if expandedLoss := eval(expanded); expandedLoss < reflectedLoss {
				replaceWorst(simplex, expanded, expandedLoss)
			} else {
				replaceWorst(simplex, reflected, reflectedLoss)
			}
		case reflectedLoss < secondWorst.loss:
			replaceWorst(simplex, reflected, reflectedLoss)
		default:
			// Contraction, outside or inside of the worst vertex.
			if reflectedLoss < worst.loss {
				for j := range contracted {
					contracted[j] = centroid[j] + nmContract*(reflected[j]-centroid[j])
				}
			} else {
				for j := range contracted {
					contracted[j] = centroid[j] + nmContract*(worst.params[j]-centroid[j])
				}
			}

			if contractedLoss := eval(contracted); contractedLoss < math.Min(reflectedLoss, worst.loss) {
				replaceWorst(simplex, contracted, contractedLoss)
			} else {
				// Shrink toward the best vertex.
				for i := 1; i < len(simplex); i++ {
					for j := range simplex[i].params {
						simplex[i].params[j] = simplex[0].params[j] +
							nmShrink*(simplex[i].params[j]-simplex[0].params[j])
					}
					simplex[i].loss = eval(simplex[i].params)
				}
			}
		}
	}

	sort.Slice(simplex, func(a, b int) bool {
		return simplex[a].loss < simplex[b].loss
	})

	params := make([]float64, dim)
	copy(params, simplex[0].params)

	return Result{
		Params:      params,
		Loss:        simplex[0].loss,
		Evaluations: evals,
		Converged:   converged,
	}
}

// lossSpread returns the loss gap between the worst and best vertices of a
// sorted simplex.
func lossSpread(simplex []vertex) float64 {
	spread := simplex[len(simplex)-1].loss - simplex[0].loss
	if math.IsInf(simplex[len(simplex)-1].loss, 1) && math.IsInf(simplex[0].loss, 1) {
		return 0
	}

	return spread
}

// replaceWorst overwrites the worst (last) vertex of a sorted simplex.
func replaceWorst(simplex []vertex, params []float64, loss float64) {
	worst := &simplex[len(simplex)-1]
	copy(worst.params, params)
	worst.loss = loss
}
