package lpsolve

import (
	"github.com/draffensperger/golp"

	"github.com/katalvlaran/drivesel/solve"
)

// row is one recorded inequality.
type row struct {
	terms []solve.Term
	rel   solve.Rel
	rhs   float64
}

// Oracle records a 0-1 model and solves it through lp_solve. It satisfies
// solve.Oracle; see the package documentation for the rebuild-per-solve
// rationale. Not safe for concurrent use — single-owner, like every
// oracle in this module.
type Oracle struct {
	nvars   int
	grouped []bool
	onehots [][]solve.Var
	rows    []row
	obj     []solve.Term
	sense   solve.Sense
	hasObj  bool
}

// New returns an empty lp_solve-backed oracle.
func New() *Oracle {
	return &Oracle{}
}

// Binaries declares n new binary decision variables.
func (o *Oracle) Binaries(n int) []solve.Var {
	var (
		vars = make([]solve.Var, n)
		i    int
	)
	for i = 0; i < n; i++ {
		vars[i] = solve.Var(o.nvars + i)
		o.grouped = append(o.grouped, false)
	}
	o.nvars += n

	return vars
}

// ExactlyOne records a one-hot equality row over vars.
func (o *Oracle) ExactlyOne(vars []solve.Var) error {
	if len(vars) == 0 {
		return solve.ErrEmptyGroup
	}

	var v solve.Var
	for _, v = range vars {
		if int(v) < 0 || int(v) >= o.nvars {
			return solve.ErrUnknownVar
		}
		if o.grouped[v] {
			return solve.ErrRegrouped
		}
	}
	for _, v = range vars {
		o.grouped[v] = true
	}

	group := make([]solve.Var, len(vars))
	copy(group, vars)
	o.onehots = append(o.onehots, group)

	return nil
}

// Constrain records one inequality row; rows are permanent.
func (o *Oracle) Constrain(terms []solve.Term, rel solve.Rel, rhs float64) error {
	var t solve.Term
	for _, t = range terms {
		if int(t.Var) < 0 || int(t.Var) >= o.nvars {
			return solve.ErrUnknownVar
		}
	}

	kept := make([]solve.Term, len(terms))
	copy(kept, terms)
	o.rows = append(o.rows, row{terms: kept, rel: rel, rhs: rhs})

	return nil
}

// SetObjective replaces the recorded objective and sense.
func (o *Oracle) SetObjective(terms []solve.Term, sense solve.Sense) {
	o.obj = make([]solve.Term, len(terms))
	copy(o.obj, terms)
	o.sense = sense
	o.hasObj = true
}

// Solve materializes the recorded model into a fresh lp_solve instance and
// runs it to a terminal status.
func (o *Oracle) Solve() (solve.Result, error) {
	if !o.hasObj {
		return solve.Result{Status: solve.Failed}, solve.ErrNoObjective
	}

	lp := golp.NewLP(0, o.nvars)

	var j int
	for j = 0; j < o.nvars; j++ {
		lp.SetInt(j, true)
	}

	// One-hot groups as equality rows. These also bound their members to
	// [0,1]; only ungrouped binaries need an explicit upper-bound row.
	var (
		group   []solve.Var
		entries []golp.Entry
		v       solve.Var
		err     error
	)
	for _, group = range o.onehots {
		entries = entries[:0]
		for _, v = range group {
			entries = append(entries, golp.Entry{Col: int(v), Val: 1})
		}
		if err = lp.AddConstraintSparse(entries, golp.EQ, 1); err != nil {
			return solve.Result{Status: solve.Failed}, err
		}
	}
	for j = 0; j < o.nvars; j++ {
		if o.grouped[j] {
			continue
		}
		if err = lp.AddConstraintSparse([]golp.Entry{{Col: j, Val: 1}}, golp.LE, 1); err != nil {
			return solve.Result{Status: solve.Failed}, err
		}
	}

	// Inequality rows; coefficients on the same variable are summed so the
	// sparse form stays canonical.
	var (
		r     row
		t     solve.Term
		dense []float64
	)
	for _, r = range o.rows {
		dense = make([]float64, o.nvars)
		for _, t = range r.terms {
			dense[t.Var] += t.Coef
		}
		entries = entries[:0]
		for j = 0; j < o.nvars; j++ {
			if dense[j] != 0 {
				entries = append(entries, golp.Entry{Col: j, Val: dense[j]})
			}
		}

		ct := golp.LE
		if r.rel == solve.GE {
			ct = golp.GE
		}
		if err = lp.AddConstraintSparse(entries, ct, r.rhs); err != nil {
			return solve.Result{Status: solve.Failed}, err
		}
	}

	objDense := make([]float64, o.nvars)
	for _, t = range o.obj {
		objDense[t.Var] += t.Coef
	}
	lp.SetObjFn(objDense)
	if o.sense == solve.Maximize {
		lp.SetMaximize()
	}

	st := lp.Solve()
	switch st {
	case golp.OPTIMAL:
		return solve.Result{
			Status:    solve.Optimal,
			Objective: lp.Objective(),
			Values:    lp.Variables(),
		}, nil
	case golp.SUBOPTIMAL:
		return solve.Result{
			Status:    solve.Feasible,
			Objective: lp.Objective(),
			Values:    lp.Variables(),
		}, nil
	case golp.INFEASIBLE:
		return solve.Result{Status: solve.Infeasible}, nil
	default:
		return solve.Result{Status: solve.Failed}, nil
	}
}
