// Package model defines the candidate model families and their estimators.
//
// An Estimator maps a predictor row to a prediction using its current
// coefficient vector. Coefficients can be swapped with SetCoefficients, so
// a search strategy can reuse one estimator instance while scoring many
// parameter vectors.
package model
