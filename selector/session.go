// Package selector - the exploration session.
//
// Design principles:
//   - The session object replaces the original tool's process-wide solver
//     state: it is explicitly constructed, exclusively owned, and threaded
//     through every exploration call.
//   - Strict staging: NewSession builds the full model; Solve runs the
//     primary objective once; then exactly one of EnumerateTies /
//     RefineByReduction may specialize the constraint set further.
//   - No concurrency: all calls are synchronous and the session is not
//     safe to share. Independent explorations need independent sessions
//     (and independent oracles).
package selector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/features"
	"github.com/katalvlaran/drivesel/solve"
)

// phase tracks the session's staging.
type phase int

const (
	phaseNew phase = iota
	phaseSolved
	phaseSpent
)

// Session owns one oracle and one feature matrix for the life of a single
// exploration. The matrix and slot layout are immutable after
// construction; the oracle only ever accumulates constraints.
type Session struct {
	oracle solve.Oracle
	motors catalog.Motors
	limb   catalog.Limb
	mat    *features.Matrix
	opts   Options
	log    *zap.Logger

	// slots[i] holds slot i's binary variable per feature column, in
	// column order (index stability is what makes decoding possible).
	slots [NumSlots][]solve.Var

	// priceTerms is the primary objective expression, kept so the refiner
	// can re-impose it as a cost cap.
	priceTerms []solve.Term

	phase   phase
	best    float64       // proven-optimal objective V after Solve
	current [NumSlots]int // currently selected column per slot
}

// NewSession validates all inputs, builds the feature matrix, declares the
// slot variables with their one-hot constraints, formulates the torque and
// speed demands, and installs the minimize-total-price objective.
//
// Contracts:
//   - oracle non-nil and exclusively owned by this session from here on;
//   - motors pass catalog.Motors.Validate (including the decode-identity
//     guard); limb passes catalog.Limb.Validate;
//   - opts tolerances positive.
//
// Errors: ErrNilOracle, ErrBadTolerance, catalog sentinels, features
// sentinels, and oracle contract errors.
//
// Complexity: O(NumSlots² · columns) constraint terms.
func NewSession(oracle solve.Oracle, motors catalog.Motors, ratios []float64, limb catalog.Limb, opts Options) (*Session, error) {
	// Stage 1 - validation.
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if opts.DecodeTol <= 0 || opts.ObjectiveTol <= 0 {
		return nil, ErrBadTolerance
	}
	if err := motors.Validate(); err != nil {
		return nil, err
	}
	if err := limb.Validate(); err != nil {
		return nil, err
	}

	// Stage 2 - feature encoding.
	m, err := features.Build(motors, ratios)
	if err != nil {
		return nil, err
	}

	s := &Session{
		oracle: oracle,
		motors: motors,
		limb:   limb,
		mat:    m,
		opts:   opts,
		log:    opts.Logger,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}

	// Stage 3 - slot variables, one binary per column per slot, plus the
	// exactly-one-hot invariant (a hard constraint, never a convention).
	var i int
	for i = 0; i < NumSlots; i++ {
		s.slots[i] = oracle.Binaries(m.Cols())
		if err = oracle.ExactlyOne(s.slots[i]); err != nil {
			return nil, err
		}
	}

	// Stage 4 - physical demands.
	if err = s.formulate(); err != nil {
		return nil, err
	}

	// Stage 5 - primary objective: minimize total price.
	s.priceTerms = make([]solve.Term, 0, NumSlots*m.Cols())
	var c int
	for i = 0; i < NumSlots; i++ {
		for c = 0; c < m.Cols(); c++ {
			s.priceTerms = append(s.priceTerms, solve.Term{
				Var:  s.slots[i][c],
				Coef: m.At(features.RowPrice, c),
			})
		}
	}
	oracle.SetObjective(s.priceTerms, solve.Minimize)

	return s, nil
}

// Columns returns the number of feature columns per slot.
func (s *Session) Columns() int { return s.mat.Cols() }

// Objective returns the proven objective value V of the primary solve.
// Only meaningful after Solve succeeded.
func (s *Session) Objective() float64 { return s.best }

// Solve runs the primary minimize-total-price solve once.
//
// Errors:
//   - ErrSessionSpent on a second call;
//   - ErrInfeasible (with limb context) when no assignment exists — never
//     a silent empty or partial Solution;
//   - ErrSolveFailed when the oracle produced no usable outcome;
//   - decode sentinels on matrix/catalog inconsistency (fatal).
//
// A time-limited-but-feasible termination is a success with
// Solution.Suboptimal set.
func (s *Session) Solve() (Solution, error) {
	if s.phase != phaseNew {
		return Solution{}, ErrSessionSpent
	}

	res, err := s.oracle.Solve()
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrSolveFailed, err)
	}
	if res.Status == solve.Infeasible {
		return Solution{}, fmt.Errorf("%w: tip force %g N, tip velocity %g m/s over %d columns",
			ErrInfeasible, s.limb.TipForce, s.limb.TipVelocity, s.mat.Cols())
	}
	if res.Failed() {
		return Solution{}, fmt.Errorf("%w: status %v", ErrSolveFailed, res.Status)
	}

	sol, err := s.decode(res)
	if err != nil {
		return Solution{}, err
	}

	s.best = res.Objective
	s.phase = phaseSolved
	s.log.Debug("primary solve",
		zap.Float64("objective", res.Objective),
		zap.Bool("suboptimal", sol.Suboptimal),
	)

	return sol, nil
}

// decode maps a solved result back to a Solution and records the selected
// column per slot. A failure here means the oracle, the matrix, and the
// catalog disagree — an invariant violation surfaced with full context.
func (s *Session) decode(res solve.Result) (Solution, error) {
	var (
		sol Solution
		i   int
	)
	sol.Suboptimal = res.Status == solve.Feasible

	for i = 0; i < NumSlots; i++ {
		idx, ok := res.Selected(s.slots[i])
		if !ok {
			return Solution{}, fmt.Errorf("%w: slot %d", ErrReadback, i)
		}

		col, err := s.mat.Column(idx)
		if err != nil {
			return Solution{}, fmt.Errorf("slot %d: %w", i, err)
		}
		motor, err := features.Decode(col, s.motors, s.opts.DecodeTol)
		if err != nil {
			return Solution{}, fmt.Errorf("slot %d, column %d: %w", i, idx, err)
		}

		sol.Drives[i] = Drive{Motor: motor, Ratio: col.Ratio, Column: idx}
		sol.Cost += motor.Price
		s.current[i] = idx
	}

	return sol, nil
}
