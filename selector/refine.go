// Package selector - secondary-objective refinement.
//
// Within the set of selections tied at the proven-optimal price, prefer
// the one with maximum total gear reduction. The cost cap is only valid
// when V is in fact the proven optimum; feeding a non-optimal V would
// silently produce an incorrect refinement, which is why the cap is taken
// from the session's own primary solve and never from the caller.
package selector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/drivesel/features"
	"github.com/katalvlaran/drivesel/solve"
)

// RefineByReduction re-optimizes the solved session for maximum total
// gear reduction subject to total price ≤ V, and returns the single
// refined Solution.
//
// The session is spent afterwards. The tied set is non-empty by
// construction (V came from a successful solve), so any failure here —
// including infeasibility — is fatal and reported as ErrRefineFailed with
// the cost cap for context.
//
// Errors: ErrNotSolved / ErrSessionSpent on staging misuse;
// ErrRefineFailed on any solver failure; decode sentinels on
// matrix/catalog inconsistency.
func (s *Session) RefineByReduction() (Solution, error) {
	if s.phase == phaseNew {
		return Solution{}, ErrNotSolved
	}
	if s.phase == phaseSpent {
		return Solution{}, ErrSessionSpent
	}
	s.phase = phaseSpent

	// Cap the cost at its proven optimum.
	if err := s.oracle.Constrain(s.priceTerms, solve.LE, s.best); err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrRefineFailed, err)
	}

	// Replace the objective: maximize the sum of selected gear ratios.
	var (
		ratioTerms = make([]solve.Term, 0, NumSlots*s.mat.Cols())
		i, c       int
	)
	for i = 0; i < NumSlots; i++ {
		for c = 0; c < s.mat.Cols(); c++ {
			ratioTerms = append(ratioTerms, solve.Term{
				Var:  s.slots[i][c],
				Coef: s.mat.At(features.RowRatio, c),
			})
		}
	}
	s.oracle.SetObjective(ratioTerms, solve.Maximize)

	res, err := s.oracle.Solve()
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrRefineFailed, err)
	}
	if res.Failed() {
		return Solution{}, fmt.Errorf("%w: status %v at cost cap %g", ErrRefineFailed, res.Status, s.best)
	}

	sol, err := s.decode(res)
	if err != nil {
		return Solution{}, err
	}

	s.log.Debug("refined by total reduction",
		zap.Float64("total_reduction", res.Objective),
		zap.Float64("cost_cap", s.best),
	)

	return sol, nil
}
