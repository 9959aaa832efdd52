package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paramfit/paramfit/errs"
)

func TestFromXY(t *testing.T) {
	table, err := FromXY([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)

	require.Equal(t, 3, table.NumRows())
	require.Equal(t, 1, table.NumFeatures())
	require.Equal(t, []string{"x"}, table.FeatureNames())
	require.Equal(t, []float64{2, 4, 6}, table.Response())
	require.Equal(t, []float64{1, 2, 3}, table.Feature(0))
}

func TestNew_EmptyResponse(t *testing.T) {
	_, err := New(nil, WithColumn("x", nil))
	require.ErrorIs(t, err, errs.ErrEmptyTable)
}

func TestNew_NoPredictors(t *testing.T) {
	_, err := New([]float64{1, 2})
	require.ErrorIs(t, err, errs.ErrNoPredictors)
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, WithColumn("x", []float64{1, 2}))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = New([]float64{1, 2, 3}, WithCategorical("grp", []string{"a", "b"}))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestNew_InvalidNames(t *testing.T) {
	_, err := New([]float64{1}, WithColumn("", []float64{1}))
	require.ErrorIs(t, err, errs.ErrInvalidColumnName)

	_, err = New([]float64{1},
		WithColumn("x", []float64{1}),
		WithColumn("x", []float64{2}),
	)
	require.ErrorIs(t, err, errs.ErrInvalidColumnName)
}

func TestWithCategorical_Expansion(t *testing.T) {
	table, err := New([]float64{10, 20, 30, 40},
		WithCategorical("cut", []string{"fair", "good", "ideal", "good"}),
	)
	require.NoError(t, err)

	// "fair" is the reference level; "good" and "ideal" get indicators.
	require.Equal(t, []string{"cut=good", "cut=ideal"}, table.FeatureNames())
	require.Equal(t, []float64{0, 1, 0, 1}, table.Feature(0))
	require.Equal(t, []float64{0, 0, 1, 0}, table.Feature(1))
}

func TestTable_Immutable(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}
	table, err := FromXY(x, y)
	require.NoError(t, err)

	// Mutating inputs or accessor results must not affect the table.
	x[0] = 99
	y[0] = 99
	table.Response()[1] = 99
	table.Feature(0)[1] = 99

	require.Equal(t, []float64{1, 2, 3}, table.Feature(0))
	require.Equal(t, []float64{2, 4, 6}, table.Response())
}

func TestRowAt(t *testing.T) {
	table, err := New([]float64{1, 2},
		WithColumn("a", []float64{10, 20}),
		WithColumn("b", []float64{30, 40}),
	)
	require.NoError(t, err)

	buf := make([]float64, table.NumFeatures())
	require.Equal(t, []float64{10, 30}, table.RowAt(0, buf))
	require.Equal(t, []float64{20, 40}, table.RowAt(1, buf))
}

func TestFingerprint(t *testing.T) {
	t1, err := FromXY([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	t2, err := FromXY([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	t3, err := FromXY([]float64{1, 2, 3}, []float64{2, 4, 7})
	require.NoError(t, err)

	require.Equal(t, t1.Fingerprint(), t2.Fingerprint())
	require.NotEqual(t, t1.Fingerprint(), t3.Fingerprint())
}

func TestGenerateLinear_Deterministic(t *testing.T) {
	t1, err := GenerateLinear(50, 1.0, 2.0, 0.5, 42)
	require.NoError(t, err)
	t2, err := GenerateLinear(50, 1.0, 2.0, 0.5, 42)
	require.NoError(t, err)

	require.Equal(t, t1.Fingerprint(), t2.Fingerprint())
	require.Equal(t, 50, t1.NumRows())
}

func TestGenerateLinear_SeedVariation(t *testing.T) {
	t1, err := GenerateLinear(50, 1.0, 2.0, 0.5, 1)
	require.NoError(t, err)
	t2, err := GenerateLinear(50, 1.0, 2.0, 0.5, 2)
	require.NoError(t, err)

	require.NotEqual(t, t1.Fingerprint(), t2.Fingerprint())
}

func TestGenerate_InvalidSize(t *testing.T) {
	_, err := GenerateLinear(0, 0, 0, 0, 1)
	require.ErrorIs(t, err, errs.ErrEmptyTable)

	_, err = GenerateQuadratic(-1, 0, 0, 0, 0, 1)
	require.ErrorIs(t, err, errs.ErrEmptyTable)
}
