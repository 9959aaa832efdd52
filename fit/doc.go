// Package fit fits candidate models to a sample table and compares them by
// a scalar loss.
//
// Fit scores every applicable model family with the configured metric,
// ranks the candidates by loss (best first), and returns both the best-fit
// model and all candidates for comparison.
//
// # Basic usage
//
//	table, _ := dataset.FromXY(x, y)
//	result, err := fit.Fit(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula)
//	y0 := result.BestFit.Estimator.Predict([]float64{3.0})
//
// # Search strategies
//
// The default strategy solves the normal equations exactly. Random search
// and Nelder-Mead descent are available for building intuition about
// loss-surface search, and behave identically from the caller's side:
//
//	result, err := fit.Fit(table,
//	    fit.WithStrategy(fit.StrategyRandomSearch),
//	    fit.WithDraws(5000),
//	    fit.WithSeed(42),
//	)
//
// Custom strategies can be run directly against the exported loss
// objective:
//
//	est, _ := model.NewEstimator(model.FamilyLinear, []float64{0, 0})
//	obj := fit.Objective(table, est, loss.MetricRMSE)
//	res, err := myMinimizer.Minimize(obj)
//
// # Diagnostics
//
// Each candidate carries its loss, R², a human-readable formula, and the
// search effort spent on it. Residuals and Predictions provide the per-row
// views used for residual analysis.
package fit
