// Package solve - exact reference oracle.
//
// Exhaustive enumerates the cross-product of the declared one-hot groups
// (the only shape this module's models take: one group per limb slot),
// checks every accumulated inequality row, and optimizes the objective by
// direct comparison. It therefore always proves Optimal or Infeasible —
// never Feasible, never Failed.
//
// This is deliberately NOT a simplex or branch-and-bound implementation;
// it is a correctness reference for tests and small catalogs. Production
// runs use the lpsolve subpackage.
//
// Determinism: groups are scanned in declaration order and variables
// within a group in declaration order, so among tied-optimal assignments
// the lexicographically first one wins. The frontier enumerator upstream
// relies on that stability for reproducible discovery order.
//
// Complexity: O(Π |groupᵢ| · rows) time per Solve, O(vars) space.
package solve

import "math"

// feasEps absorbs accumulated floating error when checking a row against
// its right-hand side.
const feasEps = 1e-9

// row is one accumulated linear inequality.
type row struct {
	terms []Term
	rel   Rel
	rhs   float64
}

// Exhaustive is the exact in-memory oracle. The zero value is not usable;
// construct with NewExhaustive.
type Exhaustive struct {
	nvars   int
	groups  [][]Var
	grouped []bool
	rows    []row
	obj     []Term
	sense   Sense
	hasObj  bool
}

// NewExhaustive returns an empty exact oracle.
func NewExhaustive() *Exhaustive {
	return &Exhaustive{}
}

// Binaries declares n new binary variables.
func (e *Exhaustive) Binaries(n int) []Var {
	var (
		vars = make([]Var, n)
		i    int
	)
	for i = 0; i < n; i++ {
		vars[i] = Var(e.nvars + i)
		e.grouped = append(e.grouped, false)
	}
	e.nvars += n

	return vars
}

// ExactlyOne registers a one-hot group. Every variable must exist and may
// belong to at most one group.
func (e *Exhaustive) ExactlyOne(vars []Var) error {
	if len(vars) == 0 {
		return ErrEmptyGroup
	}

	var v Var
	for _, v = range vars {
		if int(v) < 0 || int(v) >= e.nvars {
			return ErrUnknownVar
		}
		if e.grouped[v] {
			return ErrRegrouped
		}
	}
	for _, v = range vars {
		e.grouped[v] = true
	}

	group := make([]Var, len(vars))
	copy(group, vars)
	e.groups = append(e.groups, group)

	return nil
}

// Constrain accumulates one inequality row; rows are permanent.
func (e *Exhaustive) Constrain(terms []Term, rel Rel, rhs float64) error {
	var t Term
	for _, t = range terms {
		if int(t.Var) < 0 || int(t.Var) >= e.nvars {
			return ErrUnknownVar
		}
	}

	kept := make([]Term, len(terms))
	copy(kept, terms)
	e.rows = append(e.rows, row{terms: kept, rel: rel, rhs: rhs})

	return nil
}

// SetObjective replaces the objective expression and sense.
func (e *Exhaustive) SetObjective(terms []Term, sense Sense) {
	e.obj = make([]Term, len(terms))
	copy(e.obj, terms)
	e.sense = sense
	e.hasObj = true
}

// Solve enumerates every one-hot cross-product assignment.
//
// Errors: ErrNoObjective before SetObjective; ErrUngroupedVar if a binary
// is covered by no group (free binaries are outside this backend's scope).
func (e *Exhaustive) Solve() (Result, error) {
	if !e.hasObj {
		return Result{Status: Failed}, ErrNoObjective
	}

	var i int
	for i = 0; i < e.nvars; i++ {
		if !e.grouped[i] {
			return Result{Status: Failed}, ErrUngroupedVar
		}
	}

	// Dense views of the rows and the objective keep the inner loop to
	// O(slots) lookups per row instead of a term scan.
	var (
		objDense = make([]float64, e.nvars)
		t        Term
	)
	for _, t = range e.obj {
		objDense[t.Var] += t.Coef
	}

	rowDense := make([][]float64, len(e.rows))
	for i = range e.rows {
		rowDense[i] = make([]float64, e.nvars)
		for _, t = range e.rows[i].terms {
			rowDense[i][t.Var] += t.Coef
		}
	}

	var (
		pick     = make([]int, len(e.groups)) // pick[g]: index into groups[g]
		chosen   = make([]Var, len(e.groups))
		best     = math.Inf(1)
		bestPick []Var
		found    bool
	)
	if e.sense == Maximize {
		best = math.Inf(-1)
	}

	// Odometer enumeration over group picks; declaration order throughout.
	for {
		var g int
		for g = range e.groups {
			chosen[g] = e.groups[g][pick[g]]
		}

		if e.feasible(rowDense, chosen) {
			var (
				obj float64
				v   Var
			)
			for _, v = range chosen {
				obj += objDense[v]
			}

			improved := obj < best
			if e.sense == Maximize {
				improved = obj > best
			}
			if !found || improved {
				best = obj
				bestPick = append(bestPick[:0], chosen...)
				found = true
			}
		}

		// Advance the odometer; terminate after the last combination.
		for g = len(e.groups) - 1; g >= 0; g-- {
			pick[g]++
			if pick[g] < len(e.groups[g]) {
				break
			}
			pick[g] = 0
		}
		if g < 0 {
			break
		}
	}

	if !found {
		return Result{Status: Infeasible}, nil
	}

	values := make([]float64, e.nvars)
	var v Var
	for _, v = range bestPick {
		values[v] = 1
	}

	return Result{Status: Optimal, Objective: best, Values: values}, nil
}

// feasible checks every accumulated row for the given one-hot picks.
func (e *Exhaustive) feasible(rowDense [][]float64, chosen []Var) bool {
	var (
		i   int
		v   Var
		lhs float64
	)
	for i = range e.rows {
		lhs = 0
		for _, v = range chosen {
			lhs += rowDense[i][v]
		}
		if e.rows[i].rel == LE && lhs > e.rows[i].rhs+feasEps {
			return false
		}
		if e.rows[i].rel == GE && lhs < e.rows[i].rhs-feasEps {
			return false
		}
	}

	return true
}
