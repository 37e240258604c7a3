package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/features"
	"github.com/katalvlaran/drivesel/selector"
	"github.com/katalvlaran/drivesel/solve"
)

// nema14 is the reference catalog entry of the known reference run.
var nema14 = catalog.Motor{
	ID:          "NEMA14",
	StallTorque: 0.098,
	FreeSpeed:   139.626,
	Price:       12.95,
	Mass:        0.12,
}

// referenceRatios is the plain ratio set of the reference run; tests
// expand it with reciprocals where mounting orientation matters.
var referenceRatios = []float64{0.021, 0.048, 0.077}

// lowDemandLimb returns the reference limb: 0.1 m links extended, 0.05 m
// folded, and tip demands low enough that NEMA14 can serve every slot.
func lowDemandLimb() catalog.Limb {
	link := func(r float64) catalog.Link { return catalog.Link{Radius: r} }

	return catalog.Limb{
		TipForce:    0.05,
		TipVelocity: 0.05,
		MinLinks:    [catalog.NumLinks]catalog.Link{link(0.05), link(0.05), link(0.05)},
		MaxLinks:    [catalog.NumLinks]catalog.Link{link(0.10), link(0.10), link(0.10)},
	}
}

// newSession builds a session over the exhaustive reference oracle.
func newSession(t *testing.T, motors catalog.Motors, ratios []float64, limb catalog.Limb, opts selector.Options) *selector.Session {
	t.Helper()
	s, err := selector.NewSession(solve.NewExhaustive(), motors, ratios, limb, opts)
	require.NoError(t, err)

	return s
}

// scriptedOracle satisfies solve.Oracle with canned Solve outcomes; it
// exists to exercise status classification paths the exhaustive reference
// can never produce (time-limited incumbents, hard failures).
type scriptedOracle struct {
	nvars   int
	results []solve.Result
	errs    []error
	call    int
}

func (o *scriptedOracle) Binaries(n int) []solve.Var {
	vars := make([]solve.Var, n)
	for i := 0; i < n; i++ {
		vars[i] = solve.Var(o.nvars + i)
	}
	o.nvars += n

	return vars
}

func (o *scriptedOracle) ExactlyOne([]solve.Var) error                  { return nil }
func (o *scriptedOracle) Constrain([]solve.Term, solve.Rel, float64) error { return nil }
func (o *scriptedOracle) SetObjective([]solve.Term, solve.Sense)        {}

func (o *scriptedOracle) Solve() (solve.Result, error) {
	i := o.call
	o.call++
	var err error
	if i < len(o.errs) {
		err = o.errs[i]
	}
	if i >= len(o.results) {
		return solve.Result{Status: solve.Failed}, err
	}

	return o.results[i], err
}

// TestNewSession_Validation covers the construction sentinels.
func TestNewSession_Validation(t *testing.T) {
	limb := lowDemandLimb()
	opts := selector.DefaultOptions()

	_, err := selector.NewSession(nil, catalog.Motors{nema14}, referenceRatios, limb, opts)
	assert.ErrorIs(t, err, selector.ErrNilOracle)

	bad := opts
	bad.DecodeTol = 0
	_, err = selector.NewSession(solve.NewExhaustive(), catalog.Motors{nema14}, referenceRatios, limb, bad)
	assert.ErrorIs(t, err, selector.ErrBadTolerance)

	_, err = selector.NewSession(solve.NewExhaustive(), catalog.Motors{}, referenceRatios, limb, opts)
	assert.ErrorIs(t, err, catalog.ErrNoMotors)

	_, err = selector.NewSession(solve.NewExhaustive(), catalog.Motors{nema14}, nil, limb, opts)
	assert.ErrorIs(t, err, features.ErrNoRatios)

	brokenLimb := limb
	brokenLimb.TipForce = 0
	_, err = selector.NewSession(solve.NewExhaustive(), catalog.Motors{nema14}, referenceRatios, brokenLimb, opts)
	assert.ErrorIs(t, err, catalog.ErrBadLimb)
}

// TestSolve_NEMA14Reference reproduces the known reference run: a single
// NEMA14 catalog over the reference ratio set (with reciprocals) selects
// NEMA14 at all three slots with objective 3 × 12.95 = 38.85.
func TestSolve_NEMA14Reference(t *testing.T) {
	s := newSession(t,
		catalog.Motors{nema14},
		catalog.WithReciprocals(referenceRatios),
		lowDemandLimb(),
		selector.DefaultOptions(),
	)

	sol, err := s.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 38.85, sol.Cost, 1e-9)
	assert.InDelta(t, 38.85, s.Objective(), 1e-9)
	assert.False(t, sol.Suboptimal)
	var i int
	for i = 0; i < selector.NumSlots; i++ {
		assert.Equal(t, "NEMA14", sol.Drives[i].Motor.ID, "slot %d", i)
	}
}

// TestSolve_SolutionSatisfiesDemands cross-checks the formulated rows
// against the closed-form demand helpers for the solved assignment.
func TestSolve_SolutionSatisfiesDemands(t *testing.T) {
	limb := lowDemandLimb()
	s := newSession(t,
		catalog.Motors{nema14},
		catalog.WithReciprocals(referenceRatios),
		limb,
		selector.DefaultOptions(),
	)

	sol, err := s.Solve()
	require.NoError(t, err)

	var masses [selector.NumSlots]float64
	var i int
	for i = 0; i < selector.NumSlots; i++ {
		masses[i] = sol.Drives[i].Motor.Mass
	}
	for i = 0; i < selector.NumSlots; i++ {
		torqueNeed, derr := selector.TorqueDemand(limb, i, masses)
		require.NoError(t, derr)
		speedNeed, derr := selector.SpeedDemand(limb, i)
		require.NoError(t, derr)

		drive := sol.Drives[i]
		assert.GreaterOrEqual(t, drive.Motor.StallTorque*drive.Ratio, torqueNeed, "slot %d torque", i)
		assert.GreaterOrEqual(t, drive.Motor.FreeSpeed/drive.Ratio, speedNeed, "slot %d speed", i)
	}
}

// TestSolve_Infeasible: a tip force no combination can satisfy must abort
// with ErrInfeasible — never an empty or partial Solution.
func TestSolve_Infeasible(t *testing.T) {
	limb := lowDemandLimb()
	limb.TipForce = 1e6

	s := newSession(t,
		catalog.Motors{nema14},
		catalog.WithReciprocals(referenceRatios),
		limb,
		selector.DefaultOptions(),
	)

	_, err := s.Solve()
	assert.ErrorIs(t, err, selector.ErrInfeasible)
}

// TestSolve_Staging: a session solves exactly once.
func TestSolve_Staging(t *testing.T) {
	s := newSession(t, catalog.Motors{nema14}, []float64{20}, lowDemandLimb(), selector.DefaultOptions())

	_, err := s.Solve()
	require.NoError(t, err)
	_, err = s.Solve()
	assert.ErrorIs(t, err, selector.ErrSessionSpent)
}

// TestSolve_SuboptimalFlag: a time-limited oracle incumbent is a success,
// flagged on the Solution rather than rejected.
func TestSolve_SuboptimalFlag(t *testing.T) {
	oracle := &scriptedOracle{results: []solve.Result{
		{Status: solve.Feasible, Objective: 38.85, Values: []float64{1, 1, 1}},
	}}

	s, err := selector.NewSession(oracle, catalog.Motors{nema14}, []float64{20}, lowDemandLimb(), selector.DefaultOptions())
	require.NoError(t, err)

	sol, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, sol.Suboptimal)
	assert.InDelta(t, 38.85, sol.Cost, 1e-9)
}

// TestSolve_FailedStatus: a terminal status with no usable incumbent is
// ErrSolveFailed.
func TestSolve_FailedStatus(t *testing.T) {
	oracle := &scriptedOracle{results: []solve.Result{{Status: solve.Failed}}}

	s, err := selector.NewSession(oracle, catalog.Motors{nema14}, []float64{20}, lowDemandLimb(), selector.DefaultOptions())
	require.NoError(t, err)

	_, err = s.Solve()
	assert.ErrorIs(t, err, selector.ErrSolveFailed)
}

// TestSolve_ReadbackViolation: oracle values breaking the one-hot
// invariant surface as ErrReadback, not as a bogus Solution.
func TestSolve_ReadbackViolation(t *testing.T) {
	oracle := &scriptedOracle{results: []solve.Result{
		{Status: solve.Optimal, Objective: 38.85, Values: []float64{1, 1, 0}},
	}}

	s, err := selector.NewSession(oracle, catalog.Motors{nema14}, []float64{20}, lowDemandLimb(), selector.DefaultOptions())
	require.NoError(t, err)

	_, err = s.Solve()
	assert.ErrorIs(t, err, selector.ErrReadback)
}

// TestDemandHelpers pins the closed-form demand arithmetic.
func TestDemandHelpers(t *testing.T) {
	limb := lowDemandLimb()
	masses := [selector.NumSlots]float64{0.12, 0.12, 0.12}

	// Slot 0 at max extension: F·0.3 + g·(0.12·0.2 + 0.12·0.1).
	torque, err := selector.TorqueDemand(limb, 0, masses)
	require.NoError(t, err)
	assert.InDelta(t, 0.05*0.3+selector.Gravity*(0.12*0.2+0.12*0.1), torque, 1e-12)

	// Tip slot lifts only the payload.
	torque, err = selector.TorqueDemand(limb, 2, masses)
	require.NoError(t, err)
	assert.InDelta(t, 0.05*0.1, torque, 1e-12)

	speed, err := selector.SpeedDemand(limb, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.05/0.15, speed, 1e-12)

	_, err = selector.TorqueDemand(limb, 3, masses)
	assert.ErrorIs(t, err, selector.ErrBadSlot)
	_, err = selector.SpeedDemand(limb, -1)
	assert.ErrorIs(t, err, selector.ErrBadSlot)
}
