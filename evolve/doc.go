// Package evolve - genetic search over drivetrain assignments.
//
// What: evolve explores the same (motor, gear ratio) assignment space as
// package selector, but with a population-based heuristic instead of an
// exact oracle. An individual is one feature column per slot; fitness is
// lexicographic (total physical violation, total price), so any feasible
// assignment dominates every infeasible one, and among feasible ones the
// cheaper wins.
//
// Why it exists: the exact path proves optimality but needs a MILP backend
// (or exhaustive enumeration, which is exponential in the catalog size).
// The genetic engine trades the optimality proof for a fixed evaluation
// budget that scales linearly with Population × Generations, which makes
// it the fallback for very large catalogs and the sanity cross-check for
// the exact path on small ones.
//
// Guarantees:
//   - Deterministic: a fixed Seed reproduces the identical run (seed 0
//     selects a stable default, never the clock).
//   - Never better than exact: the returned cost is ≥ the oracle optimum
//     for the same inputs, because both search the same finite space and
//     the oracle's answer is proven.
//   - ErrNoFeasible when the whole final population is infeasible; a
//     violated assignment is never returned as a Solution.
//
// Typical use:
//
//	sol, stats, err := evolve.Evolve(motors, catalog.WithReciprocals(ratios), limb, evolve.DefaultOptions())
//
// Complexity: O(Population · Generations · NumSlots) fitness evaluations,
// each O(NumSlots) arithmetic over precomputed column attributes.
package evolve
