// Package lpsolve adapts the lp_solve mixed-integer solver (via
// github.com/draffensperger/golp, cgo) to the solve.Oracle contract.
//
// Model recording: lp_solve wants its column count fixed at construction,
// so the adapter records the model — variables, one-hot rows, inequality
// rows, objective — and materializes a fresh lp_solve instance on every
// Solve call. Accumulated cuts therefore survive re-solves without
// depending on lp_solve's incremental APIs, and the accumulate-only
// session semantics of the contract hold trivially.
//
// Status mapping:
//
//	lp_solve OPTIMAL    → solve.Optimal
//	lp_solve SUBOPTIMAL → solve.Feasible (time-limited incumbent)
//	lp_solve INFEASIBLE → solve.Infeasible
//	anything else       → solve.Failed
//
// Building this package requires the lp_solve native library
// (liblpsolve55) to be installed; see the golp README for platform notes.
package lpsolve
