package loss

import "math"

// MSE returns the mean squared error between observed and predicted values.
// Returns NaN for empty input.
func MSE(observed, predicted []float64) float64 {
	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return sumSq / float64(len(observed))
}

// RMSE returns the root-mean-square error between observed and predicted
// values. Returns NaN for empty input.
//
// RMSE is always >= MAE for the same inputs (the quadratic mean dominates
// the arithmetic mean of the absolute residuals).
func RMSE(observed, predicted []float64) float64 {
	return math.Sqrt(MSE(observed, predicted))
}

// MAE returns the mean absolute error between observed and predicted values.
// Returns NaN for empty input.
func MAE(observed, predicted []float64) float64 {
	sum := 0.0
	for i := range observed {
		sum += math.Abs(observed[i] - predicted[i])
	}

	return sum / float64(len(observed))
}

// Mean returns the arithmetic mean. Returns NaN for empty input.
func Mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Residuals returns observed[i] - predicted[i] for each i.
func Residuals(observed, predicted []float64) []float64 {
	res := make([]float64, len(observed))
	for i := range observed {
		res[i] = observed[i] - predicted[i]
	}

	return res
}

// RSquared returns the coefficient of determination:
// 1 - SS_res/SS_tot. Returns 0 when the observed values have no variance.
//
// R² is a goodness-of-fit diagnostic, not a loss: higher is better, and it
// can be negative for models worse than predicting the mean.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := Mean(observed)
	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}
