package paramfit

import (
	"errors"
	"math"
	"testing"

	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/fit"
	"github.com/paramfit/paramfit/loss"
	"github.com/paramfit/paramfit/model"
)

func TestFitXY(t *testing.T) {
	result, err := FitXY([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("FitXY failed: %v", err)
	}

	if result.BestFit.Family != model.FamilyLinear {
		t.Errorf("expected linear best fit, got %s", result.BestFit.Family)
	}
	if result.BestFit.Loss > 1e-9 {
		t.Errorf("loss should be ~0, got %v", result.BestFit.Loss)
	}
}

func TestFitXY_LengthMismatch(t *testing.T) {
	_, err := FitXY([]float64{1, 2}, []float64{1})
	if !errors.Is(err, errs.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFitLinearXY(t *testing.T) {
	best, err := FitLinearXY(
		[]float64{1, 2, 3, 4},
		[]float64{3, 5, 7, 9},
		fit.WithMetric(loss.MetricMAE),
	)
	if err != nil {
		t.Fatalf("FitLinearXY failed: %v", err)
	}

	if best.Family != model.FamilyLinear {
		t.Errorf("expected linear fit, got %s", best.Family)
	}
	if math.Abs(best.Coefficients[0]-1) > 1e-9 {
		t.Errorf("intercept should be ~1, got %v", best.Coefficients[0])
	}
	if math.Abs(best.Coefficients[1]-2) > 1e-9 {
		t.Errorf("slope should be ~2, got %v", best.Coefficients[1])
	}
	if best.Metric != loss.MetricMAE {
		t.Errorf("expected MAE metric, got %s", best.Metric)
	}
}
