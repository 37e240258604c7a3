// Package solve defines the optimization-oracle contract the selection
// core delegates to, plus an exact in-memory reference backend.
//
// The contract is the minimum a mixed-integer backend must offer:
//
//   - declare binary decision variables (Binaries);
//   - add an exactly-one-hot constraint over a set of variables (ExactlyOne);
//   - add an arbitrary linear inequality (Constrain);
//   - set/replace a linear objective with a sense (SetObjective);
//   - Solve, reporting a terminal Status and, on success, the objective
//     value and every variable's assignment.
//
// Oracles are stateful and accumulate-only: constraints and variables
// persist across repeated Solve calls and are never removed — cuts are
// permanent for the life of one exploration. An oracle instance is
// exclusively owned by a single exploration; it is not reentrant and must
// not be shared across concurrent explorations.
//
// Status taxonomy and the failure rule:
//
//   - Optimal    — solved to proven optimality.
//   - Feasible   — terminated by an internal time budget with a usable
//     incumbent; accepted as a success, flagged as suboptimal upstream.
//   - Infeasible — no feasible value exists.
//   - Failed     — anything else (numeric failure, unbounded, no incumbent).
//
// "Failed to optimize" therefore means: neither Optimal nor Feasible.
// Result.Failed encodes exactly that rule so callers never re-derive it.
//
// Backends:
//
//   - Exhaustive (this package) — exact enumeration over the declared
//     one-hot groups; always proves Optimal or Infeasible. Intended for
//     tests and small catalogs.
//   - lpsolve (subpackage) — lp_solve MILP via github.com/draffensperger/golp;
//     the production backend.
package solve
