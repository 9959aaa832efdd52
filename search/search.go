package search

// Objective is a loss function over a parameter vector. Implementations
// must not retain or mutate the slice they receive.
type Objective func(params []float64) float64

// Result is the outcome of one Minimize call.
type Result struct {
	// Params is the best parameter vector found.
	Params []float64
	// Loss is the objective value at Params.
	Loss float64
	// Evaluations is the total number of objective evaluations performed.
	Evaluations int
	// Converged reports whether the strategy met its own termination
	// criterion. Always false for RandomSearch, which has none.
	Converged bool
}

// Minimizer is the common capability of all search strategies.
type Minimizer interface {
	// Minimize searches the parameter space for the lowest objective value.
	Minimize(objective Objective) (Result, error)
}
