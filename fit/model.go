package fit

import (
	"fmt"

	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
)

// Model represents one fitted candidate with its diagnostics and the
// concrete estimator for making predictions.
type Model struct {
	// Family is the model family (linear, quadratic).
	Family model.Family
	// Coefficients contains the fitted coefficients.
	Coefficients []float64
	// Metric is the loss metric the candidate was scored with.
	Metric loss.Metric
	// Loss is the metric value on the training table (lower is better).
	Loss float64
	// RSquared is the coefficient of determination (higher is better).
	RSquared float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator model.Estimator
	// Evaluations is the number of objective evaluations the search spent
	// on this candidate (0 for the closed-form strategy).
	Evaluations int
	// Converged reports whether the search met its termination criterion.
	// Always true for the closed-form strategy, always false for random
	// search.
	Converged bool
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Family: %s, %s: %.4g, R²: %.4f, Formula: %s}",
		m.Family, m.Metric, m.Loss, m.RSquared, m.Formula)
}

// Result represents the outcome of fitting all candidate families.
//
// Candidates are ranked ascending by loss; BestFit is always Candidates[0].
type Result struct {
	// BestFit is the candidate with the lowest loss.
	BestFit *Model
	// Candidates contains all fitted candidates ranked by loss (best first).
	Candidates []*Model
	// Fingerprint identifies the table the models were fitted on
	// (dataset.Table.Fingerprint).
	Fingerprint uint64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, Candidates: %d}", r.BestFit, len(r.Candidates))
}
