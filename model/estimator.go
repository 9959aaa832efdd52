package model

import (
	"fmt"
	"strings"

	"github.com/paramfit/paramfit/errs"
)

// Family represents the type of a candidate model.
type Family int

const (
	// FamilyLinear represents the linear model: y = c0 + c1*x1 + ... + cF*xF
	FamilyLinear Family = iota
	// FamilyQuadratic represents the quadratic model in one predictor:
	// y = c0 + c1*x + c2*x²
	FamilyQuadratic
)

// familyNames maps Family to their string representations.
var familyNames = map[Family]string{
	FamilyLinear:    "linear",
	FamilyQuadratic: "quadratic",
}

// String returns the string representation of the family.
func (f Family) String() string {
	if name, exists := familyNames[f]; exists {
		return name
	}

	return "unknown"
}

// familyFromString maps string names to Family.
var familyFromString = map[string]Family{
	"linear":    FamilyLinear,
	"quadratic": FamilyQuadratic,
}

// FamilyFromString returns the Family for a given string name.
// Returns Family(-1) for unknown names.
func FamilyFromString(name string) Family {
	if family, exists := familyFromString[strings.ToLower(name)]; exists {
		return family
	}

	return Family(-1)
}

// Estimator defines the interface for candidate model instances.
type Estimator interface {
	// Predict returns the model's prediction for one predictor row.
	// The row must contain at least the number of features the estimator
	// was built for; extra values are ignored.
	Predict(row []float64) float64
	// Family returns the model family.
	Family() Family
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients updates the coefficients of the model without
	// creating a new instance. The number of coefficients must match the
	// family's expected count: numFeatures+1 for linear, 3 for quadratic.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements the linear model: y = c0 + c1*x1 + ... + cF*xF
type LinearEstimator struct {
	intercept float64
	weights   []float64
	coeffs    []float64 // cached coefficient slice to avoid allocations
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates a linear estimator with the given intercept
// and per-feature weights. At least one weight is required.
func NewLinearEstimator(intercept float64, weights ...float64) (*LinearEstimator, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("linear model requires at least 1 weight: %w", errs.ErrInvalidCoefficients)
	}

	w := make([]float64, len(weights))
	copy(w, weights)

	return &LinearEstimator{
		intercept: intercept,
		weights:   w,
		coeffs:    make([]float64, len(weights)+1),
	}, nil
}

// Predict returns intercept + sum(weights[j] * row[j]).
func (l *LinearEstimator) Predict(row []float64) float64 {
	sum := l.intercept
	for j, w := range l.weights {
		sum += w * row[j]
	}

	return sum
}

// Family returns the model family.
func (l *LinearEstimator) Family() Family {
	return FamilyLinear
}

// NumFeatures returns the number of predictor columns the estimator expects.
func (l *LinearEstimator) NumFeatures() int {
	return len(l.weights)
}

// Coefficients returns the model coefficients [intercept, w1, ..., wF].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.intercept
	copy(l.coeffs[1:], l.weights)

	return l.coeffs
}

// SetCoefficients updates the coefficients of the linear model.
// Expects exactly NumFeatures()+1 coefficients: [intercept, w1, ..., wF].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != len(l.weights)+1 {
		return fmt.Errorf("linear model expects %d coefficients, got %d: %w",
			len(l.weights)+1, len(coeffs), errs.ErrInvalidCoefficients)
	}
	l.intercept = coeffs[0]
	copy(l.weights, coeffs[1:])

	return nil
}

// QuadraticEstimator implements the single-predictor quadratic model:
// y = c0 + c1*x + c2*x²
type QuadraticEstimator struct {
	a, b, c float64
	coeffs  []float64 // cached coefficient slice to avoid allocations
}

var _ Estimator = (*QuadraticEstimator)(nil)

// NewQuadraticEstimator creates a quadratic estimator with the given
// coefficients.
func NewQuadraticEstimator(a, b, c float64) *QuadraticEstimator {
	return &QuadraticEstimator{
		a:      a,
		b:      b,
		c:      c,
		coeffs: make([]float64, 3),
	}
}

// Predict returns c0 + c1*x + c2*x² using row[0] as x.
func (q *QuadraticEstimator) Predict(row []float64) float64 {
	x := row[0]
	return q.a + q.b*x + q.c*x*x
}

// Family returns the model family.
func (q *QuadraticEstimator) Family() Family {
	return FamilyQuadratic
}

// Coefficients returns the model coefficients [c0, c1, c2].
func (q *QuadraticEstimator) Coefficients() []float64 {
	q.coeffs[0] = q.a
	q.coeffs[1] = q.b
	q.coeffs[2] = q.c

	return q.coeffs
}

// SetCoefficients updates the coefficients of the quadratic model.
// Expects exactly 3 coefficients: [c0, c1, c2].
func (q *QuadraticEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("quadratic model expects exactly 3 coefficients, got %d: %w",
			len(coeffs), errs.ErrInvalidCoefficients)
	}
	q.a = coeffs[0]
	q.b = coeffs[1]
	q.c = coeffs[2]

	return nil
}

// NewEstimator creates an estimator for the given family and coefficients.
//
// For FamilyLinear the coefficient slice is [intercept, w1, ..., wF] and
// must have at least 2 entries; for FamilyQuadratic it must have exactly 3.
//
// Example:
//
//	est, err := model.NewEstimator(model.FamilyLinear, []float64{0.5, 2.0})
//	if err != nil {
//	    return err
//	}
//	y := est.Predict([]float64{3.0}) // 0.5 + 2.0*3.0
func NewEstimator(family Family, coeffs []float64) (Estimator, error) {
	switch family {
	case FamilyLinear:
		if len(coeffs) < 2 {
			return nil, fmt.Errorf("linear model expects at least 2 coefficients, got %d: %w",
				len(coeffs), errs.ErrInvalidCoefficients)
		}

		return NewLinearEstimator(coeffs[0], coeffs[1:]...)
	case FamilyQuadratic:
		if len(coeffs) != 3 {
			return nil, fmt.Errorf("quadratic model expects exactly 3 coefficients, got %d: %w",
				len(coeffs), errs.ErrInvalidCoefficients)
		}

		return NewQuadraticEstimator(coeffs[0], coeffs[1], coeffs[2]), nil
	default:
		return nil, fmt.Errorf("family %d: %w", family, errs.ErrUnknownFamily)
	}
}

// ParamCount returns the coefficient count the family requires for a table
// with the given number of predictor columns.
// Returns 0 for unknown families.
func ParamCount(family Family, numFeatures int) int {
	switch family {
	case FamilyLinear:
		return numFeatures + 1
	case FamilyQuadratic:
		return 3
	default:
		return 0
	}
}
