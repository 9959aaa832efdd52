package dataset

import (
	"math/rand"

	"github.com/paramfit/paramfit/errs"
)

// GenerateLinear produces n samples from y = intercept + slope*x + e, with
// x uniform on [0, 10) and e gaussian noise with the given standard
// deviation. Output is deterministic for a fixed seed.
func GenerateLinear(n int, intercept, slope, noise float64, seed int64) (*Table, error) {
	if n <= 0 {
		return nil, errs.ErrEmptyTable
	}

	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * 10
		y[i] = intercept + slope*x[i] + noise*rng.NormFloat64()
	}

	return FromXY(x, y)
}

// GenerateQuadratic produces n samples from y = a + b*x + c*x² + e, with
// x uniform on [0, 10) and e gaussian noise with the given standard
// deviation. Output is deterministic for a fixed seed.
func GenerateQuadratic(n int, a, b, c, noise float64, seed int64) (*Table, error) {
	if n <= 0 {
		return nil, errs.ErrEmptyTable
	}

	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * 10
		y[i] = a + b*x[i] + c*x[i]*x[i] + noise*rng.NormFloat64()
	}

	return FromXY(x, y)
}
