package loss

import "strings"

// Metric identifies a scalar loss reduction.
type Metric uint8

const (
	// MetricRMSE is the root-mean-square error: sqrt(mean((obs-pred)²)).
	MetricRMSE Metric = iota + 1
	// MetricMSE is the mean squared error: mean((obs-pred)²).
	MetricMSE
	// MetricMAE is the mean absolute error: mean(|obs-pred|).
	MetricMAE
)

// metricNames maps Metric to their string representations.
var metricNames = map[Metric]string{
	MetricRMSE: "rmse",
	MetricMSE:  "mse",
	MetricMAE:  "mae",
}

// String returns the string representation of the metric.
func (m Metric) String() string {
	if name, exists := metricNames[m]; exists {
		return name
	}

	return "unknown"
}

// Valid reports whether m is one of the defined metrics.
func (m Metric) Valid() bool {
	_, exists := metricNames[m]
	return exists
}

// metricFromString maps string names to Metric.
var metricFromString = map[string]Metric{
	"rmse": MetricRMSE,
	"mse":  MetricMSE,
	"mae":  MetricMAE,
}

// MetricFromString returns the Metric for a given name (case-insensitive).
// Returns Metric(0) for unknown names.
func MetricFromString(name string) Metric {
	if metric, exists := metricFromString[strings.ToLower(name)]; exists {
		return metric
	}

	return Metric(0)
}

// Reduce applies the metric's reduction to the given observed/predicted
// pair. Unknown metrics reduce with RMSE.
func (m Metric) Reduce(observed, predicted []float64) float64 {
	switch m {
	case MetricMSE:
		return MSE(observed, predicted)
	case MetricMAE:
		return MAE(observed, predicted)
	default:
		return RMSE(observed, predicted)
	}
}
