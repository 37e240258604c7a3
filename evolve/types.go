package evolve

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors. Option validation failures are programming errors at
// the call site; ErrNoFeasible is a legitimate runtime outcome.
var (
	// ErrNoFeasible indicates the search budget expired without a single
	// individual satisfying the torque and speed demands.
	ErrNoFeasible = errors.New("evolve: no feasible assignment found within budget")

	// ErrBadPopulation indicates Population < 2.
	ErrBadPopulation = errors.New("evolve: population must be at least 2")

	// ErrBadGenerations indicates Generations < 1.
	ErrBadGenerations = errors.New("evolve: generations must be at least 1")

	// ErrBadRate indicates a mutation or crossover rate outside [0, 1].
	ErrBadRate = errors.New("evolve: rate must lie in [0, 1]")

	// ErrBadTournament indicates TournamentK < 2.
	ErrBadTournament = errors.New("evolve: tournament size must be at least 2")
)

// violationEps is the feasibility threshold: an individual whose summed
// constraint violation is below it counts as physically feasible.
const violationEps = 1e-9

// decodeTol bounds the torque/speed round-trip error when mapping feature
// columns back to catalog motors during engine construction.
const decodeTol = 1e-6

// Options configures one evolutionary run. Zero values are invalid except
// Seed (0 selects the stable default stream); start from DefaultOptions.
type Options struct {
	// Population is the number of individuals per generation.
	Population int

	// Generations is the evolution budget.
	Generations int

	// TournamentK is the tournament size for parent selection.
	TournamentK int

	// MutationRate is the per-slot probability of re-rolling a column.
	MutationRate float64

	// CrossoverRate is the probability of recombining two parents; with
	// the complementary probability the fitter parent is cloned.
	CrossoverRate float64

	// Seed drives the deterministic RNG; 0 selects the stable default.
	Seed int64

	// Logger receives per-improvement traces at Debug level; nil means
	// no logging.
	Logger *zap.Logger
}

// DefaultOptions returns a budget that converges on catalogs of a few
// hundred columns while staying fast enough for interactive use.
func DefaultOptions() Options {
	return Options{
		Population:    64,
		Generations:   200,
		TournamentK:   3,
		MutationRate:  0.15,
		CrossoverRate: 0.85,
		Seed:          0,
		Logger:        nil,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Population < 2 {
		return ErrBadPopulation
	}
	if o.Generations < 1 {
		return ErrBadGenerations
	}
	if o.TournamentK < 2 {
		return ErrBadTournament
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadRate
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrBadRate
	}

	return nil
}

// Stats reports how the run went, independent of its outcome.
type Stats struct {
	// Generations is the number of generations actually evolved.
	Generations int

	// Evaluations is the total number of fitness evaluations.
	Evaluations int

	// BestViolation is the summed constraint violation of the best
	// individual; 0 for a feasible result.
	BestViolation float64
}
