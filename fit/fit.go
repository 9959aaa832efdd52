package fit

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/paramfit/paramfit/dataset"
	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/internal/options"
	"github.com/paramfit/paramfit/internal/pool"
	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
	"github.com/paramfit/paramfit/search"
)

// Fit fits every applicable candidate family to the table and ranks the
// results ascending by loss.
//
// A family is skipped without error when the table cannot support it:
// quadratic requires exactly one predictor column, and every family needs
// at least as many rows as coefficients. If no family applies, Fit returns
// errs.ErrNoCandidates.
//
// Parameters:
//   - table: Sample table to fit (must be non-empty)
//   - opts: Optional configuration (WithMetric, WithFamilies, WithStrategy, ...)
//
// Returns:
//   - *Result: Ranked candidates with the best fit first
//   - error: Validation, configuration, or solver error
//
// Example:
//
//	table, _ := dataset.FromXY([]float64{1, 2, 3}, []float64{2, 4, 6})
//	result, err := fit.Fit(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula) // y ≈ 0 + 2*x
func Fit(table *dataset.Table, opts ...Option) (*Result, error) {
	if table == nil || table.NumRows() == 0 {
		return nil, errs.ErrEmptyTable
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	candidates := make([]*Model, 0, len(cfg.families))
	for _, family := range cfg.families {
		candidate, ok, err := fitFamily(table, family, cfg)
		if err != nil {
			return nil, fmt.Errorf("fit %s model: %w", family, err)
		}
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return nil, errs.ErrNoCandidates
	}

	// Rank ascending by loss; stable so ties keep the family order.
	slices.SortStableFunc(candidates, func(a, b *Model) int {
		switch {
		case a.Loss < b.Loss:
			return -1
		case a.Loss > b.Loss:
			return 1
		default:
			return 0
		}
	})

	return &Result{
		BestFit:     candidates[0],
		Candidates:  candidates,
		Fingerprint: table.Fingerprint(),
	}, nil
}

// fitFamily fits one candidate family. ok is false when the family does
// not apply to the table's shape.
func fitFamily(table *dataset.Table, family model.Family, cfg config) (*Model, bool, error) {
	paramCount := model.ParamCount(family, table.NumFeatures())
	if paramCount == 0 {
		return nil, false, errs.ErrUnknownFamily
	}
	if family == model.FamilyQuadratic && table.NumFeatures() != 1 {
		return nil, false, nil
	}
	if table.NumRows() < paramCount {
		return nil, false, nil
	}

	est, err := model.NewEstimator(family, make([]float64, paramCount))
	if err != nil {
		return nil, false, err
	}

	var (
		coeffs      []float64
		evaluations int
		converged   bool
	)

	switch cfg.strategy {
	case StrategyLeastSquares:
		coeffs, err = solveLeastSquares(table, family, paramCount)
		if err != nil {
			return nil, false, err
		}
		converged = true
	case StrategyRandomSearch:
		res, serr := runRandomSearch(table, est, paramCount, cfg)
		if serr != nil {
			return nil, false, serr
		}
		coeffs, evaluations, converged = res.Params, res.Evaluations, res.Converged
	case StrategyNelderMead:
		res, serr := runNelderMead(table, est, paramCount, cfg)
		if serr != nil {
			return nil, false, serr
		}
		coeffs, evaluations, converged = res.Params, res.Evaluations, res.Converged
	default:
		return nil, false, fmt.Errorf("strategy %d is not defined", cfg.strategy)
	}

	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, false, err
	}

	predicted := Predictions(table, est)
	observed := table.Response()

	return &Model{
		Family:       family,
		Coefficients: coeffs,
		Metric:       cfg.metric,
		Loss:         cfg.metric.Reduce(observed, predicted),
		RSquared:     loss.RSquared(observed, predicted),
		Formula:      buildFormula(family, coeffs, table.FeatureNames()),
		Estimator:    est,
		Evaluations:  evaluations,
		Converged:    converged,
	}, true, nil
}

func runRandomSearch(table *dataset.Table, est model.Estimator, paramCount int, cfg config) (search.Result, error) {
	lower := make([]float64, paramCount)
	upper := make([]float64, paramCount)
	for i := range lower {
		lower[i] = cfg.lower
		upper[i] = cfg.upper
	}

	rs, err := search.NewRandomSearch(lower, upper,
		search.WithDraws(cfg.draws),
		search.WithSeed(cfg.seed),
	)
	if err != nil {
		return search.Result{}, err
	}

	return rs.Minimize(Objective(table, est, cfg.metric))
}

func runNelderMead(table *dataset.Table, est model.Estimator, paramCount int, cfg config) (search.Result, error) {
	nmOpts := []search.NelderMeadOption{
		search.WithRestartSeed(cfg.seed),
		search.WithRestarts(cfg.restarts),
	}
	if cfg.maxIterations > 0 {
		nmOpts = append(nmOpts, search.WithMaxIterations(cfg.maxIterations))
	}
	if cfg.tolerance > 0 {
		nmOpts = append(nmOpts, search.WithTolerance(cfg.tolerance))
	}

	nm, err := search.NewNelderMead(make([]float64, paramCount), nmOpts...)
	if err != nil {
		return search.Result{}, err
	}

	return nm.Minimize(Objective(table, est, cfg.metric))
}

// Objective builds a loss objective over the estimator's coefficient
// vector, for use with any search.Minimizer.
//
// The returned function mutates the estimator's coefficients on every call
// and reuses internal buffers, so it is not safe for concurrent use.
// Parameter vectors the estimator rejects score +Inf.
func Objective(table *dataset.Table, est model.Estimator, metric loss.Metric) search.Objective {
	rows := table.NumRows()
	observed := table.Response()
	rowBuf := make([]float64, table.NumFeatures())

	return func(params []float64) float64 {
		if err := est.SetCoefficients(params); err != nil {
			return math.Inf(1)
		}

		predicted, cleanup := pool.GetFloat64Slice(rows)
		defer cleanup()

		for i := 0; i < rows; i++ {
			predicted[i] = est.Predict(table.RowAt(i, rowBuf))
		}

		return metric.Reduce(observed, predicted)
	}
}

// Predictions returns the estimator's prediction for every row of the table.
func Predictions(table *dataset.Table, est model.Estimator) []float64 {
	rows := table.NumRows()
	rowBuf := make([]float64, table.NumFeatures())

	predicted := make([]float64, rows)
	for i := 0; i < rows; i++ {
		predicted[i] = est.Predict(table.RowAt(i, rowBuf))
	}

	return predicted
}

// Residuals returns actual minus predicted for every row of the table.
func Residuals(table *dataset.Table, est model.Estimator) []float64 {
	return loss.Residuals(table.Response(), Predictions(table, est))
}

// buildFormula renders a fitted model as a human-readable formula.
func buildFormula(family model.Family, coeffs []float64, names []string) string {
	switch family {
	case model.FamilyQuadratic:
		return fmt.Sprintf("y = %.4g + %.4g*%s + %.4g*%s²",
			coeffs[0], coeffs[1], names[0], coeffs[2], names[0])
	default:
		var sb strings.Builder
		fmt.Fprintf(&sb, "y = %.4g", coeffs[0])
		for j, name := range names {
			fmt.Fprintf(&sb, " + %.4g*%s", coeffs[j+1], name)
		}

		return sb.String()
	}
}
