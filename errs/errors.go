// Package errs defines the sentinel errors shared across paramfit packages.
//
// Callers can match these with errors.Is to distinguish validation failures
// from unexpected conditions.
package errs

import "errors"

var (
	// ErrEmptyTable indicates a sample table with zero rows.
	ErrEmptyTable = errors.New("sample table has no rows")
	// ErrLengthMismatch indicates a column whose length differs from the response column.
	ErrLengthMismatch = errors.New("column length does not match response length")
	// ErrInvalidColumnName indicates an empty or duplicate column name.
	ErrInvalidColumnName = errors.New("invalid column name")
	// ErrNoPredictors indicates a table constructed without predictor columns.
	ErrNoPredictors = errors.New("table has no predictor columns")

	// ErrInvalidCoefficients indicates a coefficient slice with the wrong length for the model family.
	ErrInvalidCoefficients = errors.New("invalid coefficient count for model family")
	// ErrUnknownFamily indicates an unrecognized model family name or value.
	ErrUnknownFamily = errors.New("unknown model family")

	// ErrInvalidBounds indicates lower/upper search bounds that are empty,
	// mismatched in length, or inverted.
	ErrInvalidBounds = errors.New("invalid search bounds")
	// ErrNoSamples indicates a random search configured with zero draws.
	ErrNoSamples = errors.New("random search requires at least one draw")
	// ErrEmptyStart indicates a local search started from an empty parameter vector.
	ErrEmptyStart = errors.New("empty starting parameter vector")

	// ErrSingularSystem indicates normal equations that cannot be solved
	// (e.g. a constant predictor making the system rank-deficient).
	ErrSingularSystem = errors.New("singular normal equations")
	// ErrNoCandidates indicates a fit request whose family list produced no
	// applicable candidate models.
	ErrNoCandidates = errors.New("no applicable candidate models")

	// ErrInvalidSnapshot indicates snapshot bytes that are truncated or carry a bad magic number.
	ErrInvalidSnapshot = errors.New("invalid snapshot data")
	// ErrUnsupportedVersion indicates a snapshot produced by an incompatible format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)
