// Package paramfit fits candidate models to observed samples and ranks
// them by a scalar loss.
//
// The root package offers convenience wrappers over the building blocks:
//
//   - dataset: sample tables with numeric and categorical columns
//   - loss: scalar metrics (RMSE, MSE, MAE) and residual helpers
//   - model: candidate model families and their estimators
//   - search: generic minimizers (random search, Nelder-Mead)
//   - fit: fitting, scoring, and ranking of candidates
//   - snapshot: binary persistence of ranked results
//
// Quick start:
//
//	result, err := paramfit.FitXY(
//	    []float64{1, 2, 3},
//	    []float64{2, 4, 6},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula) // y = 0 + 2*x
//
// For multi-column tables, categorical predictors, or custom strategies,
// build a dataset.Table and call fit.Fit directly.
package paramfit

import (
	"github.com/paramfit/paramfit/dataset"
	"github.com/paramfit/paramfit/fit"
	"github.com/paramfit/paramfit/model"
)

// FitXY fits all candidate families to paired (x, y) samples and ranks
// them by loss. It is shorthand for dataset.FromXY followed by fit.Fit.
func FitXY(x, y []float64, opts ...fit.Option) (*fit.Result, error) {
	table, err := dataset.FromXY(x, y)
	if err != nil {
		return nil, err
	}

	return fit.Fit(table, opts...)
}

// FitLinearXY fits only the linear family to paired (x, y) samples.
func FitLinearXY(x, y []float64, opts ...fit.Option) (*fit.Model, error) {
	opts = append(opts, fit.WithFamilies(model.FamilyLinear))
	result, err := FitXY(x, y, opts...)
	if err != nil {
		return nil, err
	}

	return result.BestFit, nil
}
