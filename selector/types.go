package selector

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/drivesel/catalog"
)

// Sentinel errors returned by the selection core.
var (
	// ErrNilOracle indicates a nil oracle (or nil oracle factory).
	ErrNilOracle = errors.New("selector: oracle is nil")

	// ErrInfeasible indicates the model admits no feasible assignment.
	// Fatal for the primary solve and the refiner; the enumerator treats
	// the condition as normal frontier exhaustion instead.
	ErrInfeasible = errors.New("selector: no feasible motor/gear assignment")

	// ErrSolveFailed indicates the oracle terminated with neither a proven
	// optimum nor a usable incumbent.
	ErrSolveFailed = errors.New("selector: oracle failed to optimize")

	// ErrNotSolved indicates an exploration was requested before the
	// primary solve.
	ErrNotSolved = errors.New("selector: session has not been solved yet")

	// ErrSessionSpent indicates a second exploration (or second primary
	// solve) on a session whose constraint set is already specialized.
	ErrSessionSpent = errors.New("selector: session already ran its exploration")

	// ErrRefineFailed indicates the secondary-objective solve failed; the
	// tied set is known non-empty, so there is no sensible fallback.
	ErrRefineFailed = errors.New("selector: secondary refinement failed")

	// ErrReadback indicates the oracle's variable values violate the
	// one-hot invariant — an oracle bug, not a model property.
	ErrReadback = errors.New("selector: oracle read-back violates one-hot invariant")

	// ErrBadTolerance indicates a non-positive tolerance in Options.
	ErrBadTolerance = errors.New("selector: tolerances must be positive")

	// ErrBadSlot indicates a slot index outside [0, NumSlots).
	ErrBadSlot = errors.New("selector: slot index out of range")
)

// Gravity is the standard gravitational acceleration (m/s²) used for the
// gravity-loading terms of the torque constraints.
const Gravity = 9.80665

// NumSlots is the number of independent selection decisions — one per
// limb link. The physical equations are fixed for a 3-link arm.
const NumSlots = catalog.NumLinks

// Options configures a Session.
//
// DecodeTol       – torque/speed round-trip tolerance for decoding a
// selected column back to its catalog motor. Load-bearing for the
// round-trip property; must be positive.
//
// ObjectiveTol    – tolerance for the frontier-stop comparison between a
// re-solved objective and the proven optimum. The original compared for
// exact float equality; solver noise could then terminate the frontier
// early, so the tolerance is explicit and documented here.
//
// MaxAlternatives – optional cap on enumerated ties; 0 means unlimited
// (termination is guaranteed regardless, the cap only bounds work).
//
// Logger          – optional structured logger for exploration traces;
// nil means silent.
type Options struct {
	DecodeTol       float64
	ObjectiveTol    float64
	MaxAlternatives int
	Logger          *zap.Logger
}

// Option is a functional option for configuring the Select dispatcher.
type Option func(*Options)

// WithDecodeTol overrides the decode tolerance. Must be positive;
// validated in NewSession.
func WithDecodeTol(tol float64) Option {
	return func(o *Options) { o.DecodeTol = tol }
}

// WithObjectiveTol overrides the frontier-stop tolerance. Must be
// positive; validated in NewSession.
func WithObjectiveTol(tol float64) Option {
	return func(o *Options) { o.ObjectiveTol = tol }
}

// WithMaxAlternatives caps the number of enumerated ties (0 = unlimited).
func WithMaxAlternatives(n int) Option {
	return func(o *Options) { o.MaxAlternatives = n }
}

// WithLogger attaches a structured logger for exploration traces.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the documented defaults:
//
//   - DecodeTol:       1e-6
//   - ObjectiveTol:    1e-6
//   - MaxAlternatives: 0 (unlimited)
//   - Logger:          nil (silent)
func DefaultOptions() Options {
	return Options{
		DecodeTol:       1e-6,
		ObjectiveTol:    1e-6,
		MaxAlternatives: 0,
		Logger:          nil,
	}
}

// Drive is one slot's resolved choice: the catalog motor, the gear ratio
// mounted with it, and the stable feature-matrix column it came from.
type Drive struct {
	Motor  catalog.Motor
	Ratio  float64
	Column int
}

// Solution is one complete assignment: a drive per slot (outer-to-inner),
// the total price, and whether the producing solve was time-limited.
type Solution struct {
	Drives     [NumSlots]Drive
	Cost       float64
	Suboptimal bool
}

// SameSelection reports whether two solutions pick the identical triple of
// feature columns. This is the distinctness relation of a frontier.
func (s Solution) SameSelection(other Solution) bool {
	var i int
	for i = 0; i < NumSlots; i++ {
		if s.Drives[i].Column != other.Drives[i].Column {
			return false
		}
	}

	return true
}

// TotalReduction is the secondary objective: the sum of the selected gear
// ratios across slots.
func (s Solution) TotalReduction() float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < NumSlots; i++ {
		sum += s.Drives[i].Ratio
	}

	return sum
}

// Report is the outcome of the full Select dispatch: the primary optimum,
// every tie at the optimal objective, and the reduction-refined winner.
type Report struct {
	// Optimal is the first solution found at the proven optimum.
	Optimal Solution

	// Ties are the alternative optimal solutions in discovery order.
	Ties []Solution

	// Refined is the cost-optimal solution with maximum total reduction.
	Refined Solution

	// Objective is the proven-optimal total price.
	Objective float64
}

// Frontier returns the full tied-optimal set: the primary solution
// followed by the alternatives in discovery order.
func (r Report) Frontier() []Solution {
	out := make([]Solution, 0, 1+len(r.Ties))
	out = append(out, r.Optimal)
	out = append(out, r.Ties...)

	return out
}
