// Package selector - constraint formulation.
//
// Rationale (succinct):
//  1. Torque rows use the maximum-extension geometry: the longest moment
//     arms produce the binding demand; the folded variant is dominated and
//     adding it would only duplicate rows.
//  2. Speed rows use the minimum-extension geometry: the same tip velocity
//     over a shorter reach demands a larger angular speed, so the folded
//     configuration is the binding one.
//  3. Gravity loading of slot i comes from the motors mounted further out
//     (slots i+1..), each weighted by its own cumulative arm. The mass of
//     slot k's motor is a linear expression in slot k's binaries, which is
//     what keeps every row linear: the one-hot invariant guarantees the
//     expression collapses to a single column's mass.
package selector

import (
	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/features"
	"github.com/katalvlaran/drivesel/solve"
)

// formulate adds the torque and speed demand rows for every slot.
func (s *Session) formulate() error {
	var (
		cols = s.mat.Cols()
		i, k int
		c    int
		err  error
	)
	for i = 0; i < NumSlots; i++ {
		// Torque: τ(i) − g·Σ_{k>i} mass(k)·R(k) ≥ F·R(i), at max extension.
		terms := make([]solve.Term, 0, (NumSlots-i)*cols)
		for c = 0; c < cols; c++ {
			terms = append(terms, solve.Term{
				Var:  s.slots[i][c],
				Coef: s.mat.At(features.RowTorque, c),
			})
		}
		for k = i + 1; k < NumSlots; k++ {
			arm := s.limb.Reach(k, catalog.MaxExtension)
			for c = 0; c < cols; c++ {
				terms = append(terms, solve.Term{
					Var:  s.slots[k][c],
					Coef: -Gravity * arm * s.mat.At(features.RowMass, c),
				})
			}
		}
		if err = s.oracle.Constrain(terms, solve.GE, s.limb.TipForce*s.limb.Reach(i, catalog.MaxExtension)); err != nil {
			return err
		}

		// Speed: ω(i) ≥ v / R(i), at min extension.
		speedTerms := make([]solve.Term, 0, cols)
		for c = 0; c < cols; c++ {
			speedTerms = append(speedTerms, solve.Term{
				Var:  s.slots[i][c],
				Coef: s.mat.At(features.RowSpeed, c),
			})
		}
		if err = s.oracle.Constrain(speedTerms, solve.GE, s.limb.TipVelocity/s.limb.Reach(i, catalog.MinExtension)); err != nil {
			return err
		}
	}

	return nil
}
