package dataset

import (
	"fmt"

	"github.com/paramfit/paramfit/errs"
	"github.com/paramfit/paramfit/internal/hash"
	"github.com/paramfit/paramfit/internal/options"
)

// Table is an immutable collection of samples: one response column and one
// or more predictor columns of equal length.
//
// Categorical predictors are expanded to 0/1 indicator columns when the
// table is built, so every feature a Table exposes is a float64 column.
type Table struct {
	response    []float64
	names       []string
	features    [][]float64 // column-major, same length as response
	fingerprint uint64
}

// tableBuilder accumulates columns while New applies its options.
type tableBuilder struct {
	response []float64
	names    []string
	features [][]float64
}

// TableOption is a functional option for table construction.
type TableOption = options.Option[*tableBuilder]

// WithColumn adds a continuous predictor column.
//
// The values slice is copied; it must match the response length.
func WithColumn(name string, values []float64) TableOption {
	return options.New(func(b *tableBuilder) error {
		if err := b.checkName(name); err != nil {
			return err
		}
		if len(values) != len(b.response) {
			return fmt.Errorf("column %q has %d values, response has %d: %w",
				name, len(values), len(b.response), errs.ErrLengthMismatch)
		}

		col := make([]float64, len(values))
		copy(col, values)
		b.names = append(b.names, name)
		b.features = append(b.features, col)

		return nil
	})
}

// WithCategorical adds a categorical predictor column.
//
// Each level after the first observed one becomes an indicator column named
// "name=level". The first observed level is the reference level: a row
// belonging to it has zeros in all of the column's indicators, and its
// effect is absorbed by the model intercept.
func WithCategorical(name string, labels []string) TableOption {
	return options.New(func(b *tableBuilder) error {
		if err := b.checkName(name); err != nil {
			return err
		}
		if len(labels) != len(b.response) {
			return fmt.Errorf("column %q has %d labels, response has %d: %w",
				name, len(labels), len(b.response), errs.ErrLengthMismatch)
		}

		// Levels in order of first appearance; index 0 is the reference.
		levelIndex := make(map[string]int)
		var levels []string
		for _, label := range labels {
			if _, seen := levelIndex[label]; !seen {
				levelIndex[label] = len(levels)
				levels = append(levels, label)
			}
		}

		for _, level := range levels[1:] {
			col := make([]float64, len(labels))
			for i, label := range labels {
				if label == level {
					col[i] = 1
				}
			}
			b.names = append(b.names, name+"="+level)
			b.features = append(b.features, col)
		}

		return nil
	})
}

func (b *tableBuilder) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty column name: %w", errs.ErrInvalidColumnName)
	}
	for _, existing := range b.names {
		if existing == name {
			return fmt.Errorf("duplicate column name %q: %w", name, errs.ErrInvalidColumnName)
		}
	}

	return nil
}

// New creates a table from a response column and predictor column options.
//
// All input slices are copied. Returns an error if the response is empty,
// no predictor columns are given, or any column fails validation.
//
// Example:
//
//	table, err := dataset.New(y,
//	    dataset.WithColumn("x1", x1),
//	    dataset.WithColumn("x2", x2),
//	)
func New(response []float64, opts ...TableOption) (*Table, error) {
	if len(response) == 0 {
		return nil, errs.ErrEmptyTable
	}

	b := &tableBuilder{response: response}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}
	if len(b.features) == 0 {
		return nil, errs.ErrNoPredictors
	}

	resp := make([]float64, len(response))
	copy(resp, response)

	t := &Table{
		response: resp,
		names:    b.names,
		features: b.features,
	}
	t.fingerprint = t.computeFingerprint()

	return t, nil
}

// FromXY creates a single-predictor table with columns named "x" and "y".
//
// This is the common case for the toy datasets the package is exercised
// with: one continuous predictor, one continuous response.
func FromXY(x, y []float64) (*Table, error) {
	return New(y, WithColumn("x", x))
}

// NumRows returns the number of samples.
func (t *Table) NumRows() int {
	return len(t.response)
}

// NumFeatures returns the number of (expanded) predictor columns.
func (t *Table) NumFeatures() int {
	return len(t.features)
}

// FeatureNames returns a copy of the expanded predictor column names.
func (t *Table) FeatureNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}

// Response returns a copy of the response column.
func (t *Table) Response() []float64 {
	resp := make([]float64, len(t.response))
	copy(resp, t.response)

	return resp
}

// Feature returns a copy of the i-th predictor column.
// Panics if i is out of range.
func (t *Table) Feature(i int) []float64 {
	col := make([]float64, len(t.features[i]))
	copy(col, t.features[i])

	return col
}

// ResponseAt returns the response value of row i.
// Panics if i is out of range.
func (t *Table) ResponseAt(i int) float64 {
	return t.response[i]
}

// RowAt fills dst with the predictor values of row i and returns it.
//
// dst must have length NumFeatures. This accessor avoids per-row allocation
// in the fitting hot path; reuse one buffer across calls.
func (t *Table) RowAt(i int, dst []float64) []float64 {
	for j, col := range t.features {
		dst[j] = col[i]
	}

	return dst
}

// Fingerprint returns a 64-bit xxHash64 identity of the table's column
// names and data. Two tables with identical content share a fingerprint;
// it identifies which data a fitted model was trained on.
func (t *Table) Fingerprint() uint64 {
	return t.fingerprint
}

func (t *Table) computeFingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteString("response")
	d.WriteFloats(t.response)
	for i, name := range t.names {
		d.WriteString(name)
		d.WriteFloats(t.features[i])
	}

	return d.Sum64()
}
