// Package loss provides the scalar reductions used to score candidate
// models: root-mean-square error, mean squared error, and mean absolute
// error, plus the R² diagnostic.
//
// The reductions are pure functions over paired observed/predicted slices.
// They perform no validation: both slices must have the same length, and an
// empty input reduces 0/0 to NaN. Input validation belongs to the callers
// at the public API boundary (see the fit package).
package loss
