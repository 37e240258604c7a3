// Package selector - unified dispatcher.
//
// Select is the canonical entry point: primary solve, full tie
// enumeration, and secondary refinement in one call. Because a session's
// oracle is mutated destructively by each exploration, the dispatcher
// builds two sessions from the oracle factory — one for the enumeration,
// one for the refinement — each seeing the identical model.
package selector

import (
	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/solve"
)

// Select runs the complete exploration and returns the Report.
//
// newOracle must return a fresh, empty oracle on every call; two are
// consumed. Options default to DefaultOptions and are overridden by opt.
//
// Errors: ErrNilOracle for a nil factory; otherwise exactly the sentinels
// of NewSession, Solve, EnumerateTies and RefineByReduction. An
// infeasible model aborts with ErrInfeasible — never an empty Report.
func Select(newOracle func() solve.Oracle, motors catalog.Motors, ratios []float64, limb catalog.Limb, opt ...Option) (Report, error) {
	if newOracle == nil {
		return Report{}, ErrNilOracle
	}

	opts := DefaultOptions()
	var o Option
	for _, o = range opt {
		o(&opts)
	}

	// Exploration 1 - primary optimum and its tied frontier.
	enum, err := NewSession(newOracle(), motors, ratios, limb, opts)
	if err != nil {
		return Report{}, err
	}
	first, err := enum.Solve()
	if err != nil {
		return Report{}, err
	}
	ties, err := enum.EnumerateTies()
	if err != nil {
		return Report{}, err
	}

	// Exploration 2 - secondary refinement over the untouched tied set.
	ref, err := NewSession(newOracle(), motors, ratios, limb, opts)
	if err != nil {
		return Report{}, err
	}
	if _, err = ref.Solve(); err != nil {
		return Report{}, err
	}
	refined, err := ref.RefineByReduction()
	if err != nil {
		return Report{}, err
	}

	return Report{
		Optimal:   first,
		Ties:      ties,
		Refined:   refined,
		Objective: enum.Objective(),
	}, nil
}
