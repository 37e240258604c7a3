// Package selector chooses which (motor, gear-ratio) combination drives
// each link of a three-segment limb so that every link meets its required
// stall torque and free speed, at provably minimal total price — then
// enumerates every selection tied at that minimum, and refines one winner
// among the ties by maximum total gear reduction.
//
// # Model
//
// Links are indexed outer-to-inner: slot 0 drives the shoulder-most link,
// slot 2 the tip-most. Each slot owns one binary variable per feature
// column (see package features) and an exactly-one-hot constraint, so a
// feasible assignment selects exactly one column per slot.
//
// Torque demand at slot i (formulated at the maximum-extension geometry,
// the worst-case moment arm; g = Gravity):
//
//	τ(i) ≥ F_tip · R(i)  +  g · Σ_{k>i} mass(k) · R(k)
//
// where R(j) is the cumulative radial length from link j to the tip and
// mass(k) is the mass of whichever motor slot k selects — itself a linear
// expression in slot k's binaries, which keeps the whole row linear.
//
// Speed demand at slot i (formulated at the minimum-extension geometry,
// where the same tip velocity demands the largest angular speed):
//
//	ω(i) ≥ v_tip / R(i)
//
// # Explorations
//
// A Session owns one oracle exclusively. Constraints only ever accumulate,
// so a session supports exactly one exploration after its primary solve:
//
//   - EnumerateTies — iterative no-good-cut peel-off: forbid the current
//     column triple with Σ selected vars ≤ 2, re-solve, stop on failure,
//     infeasibility, or objective drift beyond ObjectiveTol. Discovery
//     order is preserved; termination is guaranteed because every cut
//     strictly removes at least one reachable combination from a finite
//     space.
//   - RefineByReduction — cap total price at the proven optimum, replace
//     the objective with the sum of selected gear ratios, maximize once.
//
// Running both requires two sessions; the Select dispatcher does exactly
// that. Misuse is surfaced with ErrNotSolved / ErrSessionSpent rather than
// silently corrupting an exploration.
//
// # Error taxonomy
//
//   - ErrInfeasible — no feasible assignment at all: fatal for the primary
//     solve and the refiner, normal termination for the enumerator.
//   - Suboptimal-but-feasible — a time-limited oracle incumbent: accepted,
//     flagged via Solution.Suboptimal.
//   - Objective drift during enumeration — normal frontier exhaustion.
//   - features.ErrDecodeMismatch — matrix/catalog out of sync: fatal
//     invariant violation, never swallowed.
//
// All solves are synchronous and blocking; there is no cancellation beyond
// the oracle's own internal time budget.
package selector
