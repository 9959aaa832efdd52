package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/paramfit/paramfit/dataset"
	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
	"github.com/paramfit/paramfit/search"
)

// exactLineTable returns the dataset {(1,2),(2,4),(3,6)}: y = 0 + 2x with
// zero noise.
func exactLineTable(t *testing.T) *dataset.Table {
	t.Helper()

	table, err := dataset.FromXY([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("FromXY failed: %v", err)
	}

	return table
}

// TestFit_ExactLine checks the reference case: least squares on perfectly
// linear data recovers p ≈ (0, 2) with loss ≈ 0.
func TestFit_ExactLine(t *testing.T) {
	result, err := Fit(exactLineTable(t))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	best := result.BestFit
	if best == nil {
		t.Fatal("BestFit should not be nil")
	}
	if best.Family != model.FamilyLinear {
		t.Errorf("expected linear best fit, got %s", best.Family)
	}
	if math.Abs(best.Coefficients[0]) > 1e-9 {
		t.Errorf("intercept should be ~0, got %v", best.Coefficients[0])
	}
	if math.Abs(best.Coefficients[1]-2) > 1e-9 {
		t.Errorf("slope should be ~2, got %v", best.Coefficients[1])
	}
	if best.Loss > 1e-9 {
		t.Errorf("loss should be ~0, got %v", best.Loss)
	}
	if math.Abs(best.RSquared-1) > 1e-9 {
		t.Errorf("R² should be ~1, got %v", best.RSquared)
	}
	if !best.Converged {
		t.Error("closed-form fit should report converged")
	}
}

func TestFit_RankedByLoss(t *testing.T) {
	// Strongly curved data: quadratic must beat linear.
	table, err := dataset.GenerateQuadratic(100, 1.0, -2.0, 3.0, 0.1, 7)
	if err != nil {
		t.Fatalf("GenerateQuadratic failed: %v", err)
	}

	result, err := Fit(table)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
	if result.BestFit != result.Candidates[0] {
		t.Error("BestFit should be the first candidate")
	}
	if result.BestFit.Family != model.FamilyQuadratic {
		t.Errorf("expected quadratic best fit, got %s", result.BestFit.Family)
	}
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i-1].Loss > result.Candidates[i].Loss {
			t.Errorf("candidates not sorted by loss: %v > %v",
				result.Candidates[i-1].Loss, result.Candidates[i].Loss)
		}
	}
	if result.Fingerprint != table.Fingerprint() {
		t.Error("result should carry the table fingerprint")
	}
}

func TestFit_EmptyTable(t *testing.T) {
	if _, err := Fit(nil); !errors.Is(err, errs.ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestFit_NoCandidates(t *testing.T) {
	// Quadratic does not apply to a two-predictor table.
	table, err := dataset.New([]float64{1, 2, 3},
		dataset.WithColumn("a", []float64{1, 2, 4}),
		dataset.WithColumn("b", []float64{2, 1, 3}),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = Fit(table, WithFamilies(model.FamilyQuadratic))
	if !errors.Is(err, errs.ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestFit_SingularSystem(t *testing.T) {
	// A constant predictor makes the normal equations rank-deficient.
	table, err := dataset.FromXY([]float64{5, 5, 5}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("FromXY failed: %v", err)
	}

	_, err = Fit(table, WithFamilies(model.FamilyLinear))
	if !errors.Is(err, errs.ErrSingularSystem) {
		t.Errorf("expected ErrSingularSystem, got %v", err)
	}
}

func TestFit_MultipleFeatures(t *testing.T) {
	// y = 1 + 2*a - 3*b, exact.
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 3, 1, 4, 2}
	y := make([]float64, len(a))
	for i := range y {
		y[i] = 1 + 2*a[i] - 3*b[i]
	}

	table, err := dataset.New(y,
		dataset.WithColumn("a", a),
		dataset.WithColumn("b", b),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := Fit(table, WithFamilies(model.FamilyLinear))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	want := []float64{1, 2, -3}
	for i, w := range want {
		if math.Abs(result.BestFit.Coefficients[i]-w) > 1e-9 {
			t.Errorf("coefficient %d: want %v, got %v", i, w, result.BestFit.Coefficients[i])
		}
	}
}

func TestFit_CategoricalPredictor(t *testing.T) {
	// Group means: ref level 1.0, level "b" adds 2.0.
	table, err := dataset.New([]float64{1, 1, 3, 3},
		dataset.WithCategorical("grp", []string{"a", "a", "b", "b"}),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := Fit(table, WithFamilies(model.FamilyLinear))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	coeffs := result.BestFit.Coefficients
	if math.Abs(coeffs[0]-1) > 1e-9 || math.Abs(coeffs[1]-2) > 1e-9 {
		t.Errorf("expected coefficients (1, 2), got %v", coeffs)
	}
	if result.BestFit.Loss > 1e-9 {
		t.Errorf("loss should be ~0, got %v", result.BestFit.Loss)
	}
}

func TestFit_RandomSearchStrategy(t *testing.T) {
	table := exactLineTable(t)

	result, err := Fit(table,
		WithStrategy(StrategyRandomSearch),
		WithDraws(4000),
		WithSeed(42),
		WithFamilies(model.FamilyLinear),
	)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	best := result.BestFit
	if best.Loss < 0 {
		t.Errorf("loss must be non-negative, got %v", best.Loss)
	}
	// Random search cannot beat the exact solution (loss 0) and should get
	// reasonably close with this many draws over [-10, 10]².
	if best.Loss > 1.0 {
		t.Errorf("random search loss unexpectedly high: %v", best.Loss)
	}
	if best.Converged {
		t.Error("random search must not report convergence")
	}
	if best.Evaluations != 4000 {
		t.Errorf("expected 4000 evaluations, got %d", best.Evaluations)
	}

	// Deterministic for a fixed seed.
	again, err := Fit(table,
		WithStrategy(StrategyRandomSearch),
		WithDraws(4000),
		WithSeed(42),
		WithFamilies(model.FamilyLinear),
	)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if again.BestFit.Loss != best.Loss {
		t.Errorf("same seed should reproduce loss: %v vs %v", again.BestFit.Loss, best.Loss)
	}
}

func TestFit_NelderMeadStrategy(t *testing.T) {
	result, err := Fit(exactLineTable(t),
		WithStrategy(StrategyNelderMead),
		WithFamilies(model.FamilyLinear),
	)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	best := result.BestFit
	if best.Loss > 1e-4 {
		t.Errorf("loss should be ~0, got %v", best.Loss)
	}
	if math.Abs(best.Coefficients[0]) > 1e-2 {
		t.Errorf("intercept should be ~0, got %v", best.Coefficients[0])
	}
	if math.Abs(best.Coefficients[1]-2) > 1e-2 {
		t.Errorf("slope should be ~2, got %v", best.Coefficients[1])
	}
	if best.Evaluations == 0 {
		t.Error("simplex descent should report its evaluation count")
	}
}

// Local minimization from two different starting points on a convex loss
// surface must converge to the same loss.
func TestObjective_TwoStartsSameLoss(t *testing.T) {
	table := exactLineTable(t)

	minimizeFrom := func(start []float64) float64 {
		est, err := model.NewEstimator(model.FamilyLinear, []float64{0, 0})
		if err != nil {
			t.Fatalf("NewEstimator failed: %v", err)
		}
		nm, err := search.NewNelderMead(start)
		if err != nil {
			t.Fatalf("NewNelderMead failed: %v", err)
		}
		res, err := nm.Minimize(Objective(table, est, loss.MetricRMSE))
		if err != nil {
			t.Fatalf("Minimize failed: %v", err)
		}

		return res.Loss
	}

	l1 := minimizeFrom([]float64{5, 5})
	l2 := minimizeFrom([]float64{-7, 0})
	if math.Abs(l1-l2) > 1e-6 {
		t.Errorf("different starts should reach the same loss: %v vs %v", l1, l2)
	}
}

func TestFit_MAEvsRMSE(t *testing.T) {
	table, err := dataset.GenerateLinear(80, 1.0, 2.0, 1.0, 11)
	if err != nil {
		t.Fatalf("GenerateLinear failed: %v", err)
	}

	rmseResult, err := Fit(table, WithFamilies(model.FamilyLinear))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	maeResult, err := Fit(table, WithFamilies(model.FamilyLinear), WithMetric(loss.MetricMAE))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if maeResult.BestFit.Metric != loss.MetricMAE {
		t.Errorf("expected MAE metric, got %s", maeResult.BestFit.Metric)
	}
	// Same coefficients (the strategy is metric-independent here), and
	// MAE never exceeds RMSE on the same residuals.
	if maeResult.BestFit.Loss > rmseResult.BestFit.Loss {
		t.Errorf("MAE %v should not exceed RMSE %v", maeResult.BestFit.Loss, rmseResult.BestFit.Loss)
	}
}

func TestFit_InvalidOptions(t *testing.T) {
	table := exactLineTable(t)

	if _, err := Fit(table, WithMetric(loss.Metric(99))); err == nil {
		t.Error("expected error for invalid metric")
	}
	if _, err := Fit(table, WithFamilies()); err == nil {
		t.Error("expected error for empty family list")
	}
	if _, err := Fit(table, WithBounds(5, -5)); err == nil {
		t.Error("expected error for inverted bounds")
	}
	if _, err := Fit(table, WithDraws(0)); err == nil {
		t.Error("expected error for zero draws")
	}
}

func TestResidualsAndPredictions(t *testing.T) {
	table := exactLineTable(t)
	est, err := model.NewEstimator(model.FamilyLinear, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewEstimator failed: %v", err)
	}

	predicted := Predictions(table, est)
	want := []float64{2, 3, 4}
	for i := range want {
		if predicted[i] != want[i] {
			t.Errorf("prediction %d: want %v, got %v", i, want[i], predicted[i])
		}
	}

	residuals := Residuals(table, est)
	wantRes := []float64{0, 1, 2}
	for i := range wantRes {
		if residuals[i] != wantRes[i] {
			t.Errorf("residual %d: want %v, got %v", i, wantRes[i], residuals[i])
		}
	}
}

func TestModel_String(t *testing.T) {
	result, err := Fit(exactLineTable(t))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	s := result.BestFit.String()
	if s == "" {
		t.Error("String should not be empty")
	}
	if (&Result{}).String() != "Result{BestFit: nil}" {
		t.Error("empty result should render as nil best fit")
	}
}

func TestStrategy_String(t *testing.T) {
	if StrategyLeastSquares.String() != "least-squares" {
		t.Errorf("unexpected name %q", StrategyLeastSquares.String())
	}
	if Strategy(99).String() != "unknown" {
		t.Errorf("unexpected name %q", Strategy(99).String())
	}
}
