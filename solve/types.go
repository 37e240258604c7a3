package solve

import "errors"

// Sentinel errors returned by oracle implementations.
var (
	// ErrUnknownVar indicates a Term or group references a variable that
	// was never declared by Binaries.
	ErrUnknownVar = errors.New("solve: unknown decision variable")

	// ErrEmptyGroup indicates an ExactlyOne call with no variables.
	ErrEmptyGroup = errors.New("solve: one-hot group is empty")

	// ErrRegrouped indicates a variable placed into two one-hot groups.
	ErrRegrouped = errors.New("solve: variable already belongs to a one-hot group")

	// ErrUngroupedVar indicates a declared binary variable covered by no
	// one-hot group. The exhaustive backend enumerates group cross-products
	// and cannot assign free binaries.
	ErrUngroupedVar = errors.New("solve: binary variable not covered by a one-hot group")

	// ErrNoObjective indicates Solve was called before SetObjective.
	ErrNoObjective = errors.New("solve: objective not set")
)

// Var is an opaque handle to one binary decision variable.
type Var int

// Term is one linear-expression term: Coef · value(Var).
type Term struct {
	Var  Var
	Coef float64
}

// Rel is the relation of a linear inequality row.
type Rel int

const (
	// LE constrains the expression to ≤ rhs.
	LE Rel = iota

	// GE constrains the expression to ≥ rhs.
	GE
)

// Sense is the optimization direction of the objective.
type Sense int

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// Status is the terminal state of one Solve call.
type Status int

const (
	// Optimal: solved to proven optimality.
	Optimal Status = iota

	// Feasible: a time-limited termination that still produced a usable
	// incumbent; not proven optimal.
	Feasible

	// Infeasible: no feasible assignment exists.
	Infeasible

	// Failed: no usable outcome (numeric failure, unbounded, aborted
	// without an incumbent).
	Failed
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible (not proven optimal)"
	case Infeasible:
		return "infeasible"
	default:
		return "failed"
	}
}

// Result is the read-back of one Solve call. Values is indexed by Var and
// is only meaningful when Failed() reports false and Status != Infeasible.
type Result struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Failed applies the contract's failure classification: a solve failed iff
// the status is neither proven-optimal nor time-limited-with-incumbent.
func (r Result) Failed() bool {
	return r.Status != Optimal && r.Status != Feasible
}

// Value returns the assignment of v, or 0 when v is out of range.
func (r Result) Value(v Var) float64 {
	if int(v) < 0 || int(v) >= len(r.Values) {
		return 0
	}

	return r.Values[v]
}

// Selected returns the position (within vars) of the variable assigned 1
// in a one-hot group, and whether exactly such a position was found.
// Assignments are read with a 0.5 threshold to absorb MILP round-off.
func (r Result) Selected(vars []Var) (int, bool) {
	var (
		pos   = -1
		i     int
		v     Var
		count int
	)
	for i, v = range vars {
		if r.Value(v) > 0.5 {
			pos = i
			count++
		}
	}

	return pos, count == 1
}

// Oracle is the mixed-integer backend contract. See the package
// documentation for statefulness and ownership rules.
type Oracle interface {
	// Binaries declares n new binary decision variables and returns their
	// handles in declaration order.
	Binaries(n int) []Var

	// ExactlyOne adds the hard constraint Σ vars == 1.
	ExactlyOne(vars []Var) error

	// Constrain adds the linear inequality Σ terms rel rhs.
	Constrain(terms []Term, rel Rel, rhs float64) error

	// SetObjective replaces the linear objective and its sense.
	SetObjective(terms []Term, sense Sense)

	// Solve blocks until a terminal status is reached and returns the
	// read-back. The error channel is reserved for contract violations
	// (e.g. ErrNoObjective, ErrUngroupedVar), never for infeasibility —
	// that is a Status.
	Solve() (Result, error)
}
