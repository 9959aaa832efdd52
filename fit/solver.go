package fit

import (
	"fmt"
	"math"

	"github.com/paramfit/paramfit/dataset"
	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/model"
)

// solveLeastSquares fits one family exactly by solving the normal
// equations (XᵀX)c = Xᵀy over the family's design matrix.
func solveLeastSquares(table *dataset.Table, family model.Family, paramCount int) ([]float64, error) {
	rows := table.NumRows()
	rowBuf := make([]float64, table.NumFeatures())
	design := make([]float64, paramCount)

	// Accumulate XᵀX and Xᵀy in one pass over the rows.
	xtx := make([][]float64, paramCount)
	for i := range xtx {
		xtx[i] = make([]float64, paramCount)
	}
	xty := make([]float64, paramCount)

	for i := 0; i < rows; i++ {
		designRow(family, table.RowAt(i, rowBuf), design)
		y := table.ResponseAt(i)
		for a := 0; a < paramCount; a++ {
			for b := 0; b < paramCount; b++ {
				xtx[a][b] += design[a] * design[b]
			}
			xty[a] += design[a] * y
		}
	}

	coeffs, err := solveLinearSystem(xtx, xty)
	if err != nil {
		return nil, fmt.Errorf("%s normal equations: %w", family, err)
	}

	return coeffs, nil
}

// designRow fills dst with one row of the family's design matrix.
// dst[0] is the intercept column.
func designRow(family model.Family, row []float64, dst []float64) {
	dst[0] = 1
	switch family {
	case model.FamilyQuadratic:
		dst[1] = row[0]
		dst[2] = row[0] * row[0]
	default:
		copy(dst[1:], row)
	}
}

// solveLinearSystem solves a*x = b by Gaussian elimination with partial
// pivoting. a and b are modified in place.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)

	for col := 0; col < n; col++ {
		// Pick the largest remaining pivot for numerical stability.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errs.ErrSingularSystem
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}

	return x, nil
}
