// Package selector - frontier enumeration by no-good cuts.
//
// Rationale (succinct):
//  1. After the primary solve proved the optimum V, forbid the found
//     column triple with a no-good cut: the sum of the three selected
//     binaries must be ≤ NumSlots−1. Any single-slot change escapes the
//     cut, so nothing else is excluded.
//  2. Re-solve. Three outcomes end the frontier: the oracle failed (per
//     the contract's classification), the model went infeasible, or the
//     objective drifted away from V beyond ObjectiveTol. All three are
//     normal termination, not errors.
//  3. Otherwise decode, append in discovery order, cut again from the new
//     selection, repeat.
//
// The original implemented this as self-referential recursion; here it is
// an explicit loop accumulating into a slice, so catalogs with many tied
// alternatives cannot grow the call stack. Discovery order is preserved.
//
// Termination: each cut strictly removes at least one previously-reachable
// combination from a finite space, so the loop runs at most
// columns^NumSlots iterations; MaxAlternatives can bound it tighter.
package selector

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/drivesel/solve"
)

// EnumerateTies peels off every alternative selection tied at the proven
// optimum, in discovery order. The initial solution from Solve is NOT
// included — callers prepend it (see Report.Frontier).
//
// The session is spent afterwards: the accumulated cuts make any further
// exploration meaningless on this oracle.
//
// Errors: ErrNotSolved / ErrSessionSpent on staging misuse; decode
// sentinels on matrix/catalog inconsistency. Oracle failure, infeasibility
// and objective drift terminate the frontier normally with a nil error.
func (s *Session) EnumerateTies() ([]Solution, error) {
	if s.phase == phaseNew {
		return nil, ErrNotSolved
	}
	if s.phase == phaseSpent {
		return nil, ErrSessionSpent
	}
	s.phase = phaseSpent

	var (
		ties  []Solution
		terms = make([]solve.Term, NumSlots)
		i     int
	)
	for {
		if s.opts.MaxAlternatives > 0 && len(ties) >= s.opts.MaxAlternatives {
			s.log.Debug("frontier capped", zap.Int("alternatives", len(ties)))

			return ties, nil
		}

		// No-good cut over the currently selected triple.
		for i = 0; i < NumSlots; i++ {
			terms[i] = solve.Term{Var: s.slots[i][s.current[i]], Coef: 1}
		}
		if err := s.oracle.Constrain(terms, solve.LE, NumSlots-1); err != nil {
			return ties, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}

		res, err := s.oracle.Solve()
		if err != nil {
			return ties, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}
		if res.Status == solve.Infeasible || res.Failed() {
			s.log.Debug("frontier exhausted",
				zap.Stringer("status", res.Status),
				zap.Int("alternatives", len(ties)),
			)

			return ties, nil
		}
		if math.Abs(res.Objective-s.best) > s.opts.ObjectiveTol {
			s.log.Debug("objective drift, frontier exhausted",
				zap.Float64("objective", res.Objective),
				zap.Float64("optimum", s.best),
			)

			return ties, nil
		}

		sol, err := s.decode(res) // also advances s.current to the new triple
		if err != nil {
			return ties, err
		}
		ties = append(ties, sol)
		s.log.Debug("tie found",
			zap.Int("ordinal", len(ties)),
			zap.Float64("objective", res.Objective),
		)
	}
}
