// Package search provides the parameter-space search strategies used to
// minimize a scalar loss objective.
//
// Strategies are polymorphic over Objective, a plain "given parameters,
// return loss" function, so they know nothing about models or datasets.
// Two strategies are provided:
//
//   - RandomSearch: a fixed number of independent uniform draws from a
//     bounded range, reporting the minimum. No convergence guarantee;
//     quality is bounded by the draw count and range coverage.
//   - NelderMead: derivative-free simplex descent from a starting vector,
//     terminating at a local optimum. Not guaranteed to find the global
//     optimum; sensitive to the starting point, increasingly so as
//     dimensionality grows. WithRestarts mitigates this by rerunning from
//     jittered starts and keeping the best outcome.
//
// Both are deterministic for a fixed seed and single-threaded; a strategy
// instance must not be shared across concurrent Minimize calls.
package search
