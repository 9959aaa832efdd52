// Package dataset provides immutable sample tables for model fitting.
//
// A Table pairs one response column with one or more predictor columns.
// Continuous predictors are stored as-is; categorical predictors expand to
// indicator columns at construction time, with the first observed level as
// the reference level (absorbed by the model intercept). Once constructed a
// table never changes, so it can be shared freely across fits.
//
// # Construction
//
// From paired slices:
//
//	table, err := dataset.FromXY(x, y)
//
// With named and categorical columns:
//
//	table, err := dataset.New(prices,
//	    dataset.WithColumn("carat", carats),
//	    dataset.WithCategorical("cut", cuts),
//	)
//
// # Synthetic data
//
// GenerateLinear and GenerateQuadratic produce noisy samples from known
// ground-truth coefficients, useful for tests and for sanity-checking a
// search strategy against a known answer.
package dataset
