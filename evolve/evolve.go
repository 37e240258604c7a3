// Package evolve - the genetic engine.
//
// Rationale (succinct):
//  1. The genome is the column triple itself, not a bit string: every
//     genome is a syntactically valid assignment, so the operators never
//     produce garbage and no repair step is needed.
//  2. Fitness is lexicographic (violation, cost). Comparing violations
//     first steers the population toward feasibility before price matters,
//     which is what makes the engine usable on tightly constrained limbs.
//  3. Elitism of one preserves the incumbent across generations, so the
//     reported best is monotone in the generation count.
//
// Contracts:
//   - Deterministic for a fixed Options.Seed.
//   - Returned Solution is feasible within violationEps, or ErrNoFeasible.
//
// Complexity: O(Population · Generations) evaluations, O(NumSlots) each.
package evolve

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/features"
	"github.com/katalvlaran/drivesel/selector"
)

// individual is one genome: a feature-matrix column index per slot.
type individual [selector.NumSlots]int

// fitness orders individuals lexicographically: feasibility first, then
// total price.
type fitness struct {
	violation float64
	cost      float64
}

// better reports whether f strictly dominates g.
func (f fitness) better(g fitness) bool {
	if f.violation != g.violation {
		return f.violation < g.violation
	}

	return f.cost < g.cost
}

// gaEngine carries the per-run immutable inputs and the mutable search
// state. It is built once per Evolve call and runs single-threaded.
type gaEngine struct {
	cols       []features.Column      // column attributes by index
	motorOf    []catalog.Motor        // decoded motor by column index
	speedNeeds [selector.NumSlots]float64 // demands are mass-independent
	limb       catalog.Limb
	opts       Options
	rng        *rand.Rand
	log        *zap.Logger
	evals      int
}

// Evolve runs one genetic search over the (motor, gear ratio) assignment
// space and returns the best feasible assignment found.
//
// The ratio set is used as given; apply catalog.WithReciprocals first when
// both mounting orientations are candidates.
//
// Errors: option sentinels from types.go, catalog/features validation
// errors, ErrNoFeasible.
func Evolve(motors catalog.Motors, ratios []float64, limb catalog.Limb, opts Options) (selector.Solution, Stats, error) {
	if err := opts.Validate(); err != nil {
		return selector.Solution{}, Stats{}, err
	}
	if err := motors.Validate(); err != nil {
		return selector.Solution{}, Stats{}, err
	}
	if err := limb.Validate(); err != nil {
		return selector.Solution{}, Stats{}, err
	}

	mat, err := features.Build(motors, ratios)
	if err != nil {
		return selector.Solution{}, Stats{}, err
	}

	e, err := newEngine(mat, motors, limb, opts)
	if err != nil {
		return selector.Solution{}, Stats{}, err
	}

	return e.run()
}

// newEngine precomputes everything the fitness function needs: decoded
// column attributes, the owning motor per column, and the per-slot speed
// demands (which do not depend on the assignment).
func newEngine(mat *features.Matrix, motors catalog.Motors, limb catalog.Limb, opts Options) (*gaEngine, error) {
	var (
		n       = mat.Cols()
		cols    = make([]features.Column, n)
		motorOf = make([]catalog.Motor, n)
		j       int
		err     error
	)
	for j = 0; j < n; j++ {
		if cols[j], err = mat.Column(j); err != nil {
			return nil, err
		}
		if motorOf[j], err = features.Decode(cols[j], motors, decodeTol); err != nil {
			return nil, err
		}
	}

	var (
		e = &gaEngine{
			cols:    cols,
			motorOf: motorOf,
			limb:    limb,
			opts:    opts,
			rng:     rngFromSeed(opts.Seed),
			log:     opts.Logger,
		}
		i int
	)
	if e.log == nil {
		e.log = zap.NewNop()
	}
	for i = 0; i < selector.NumSlots; i++ {
		if e.speedNeeds[i], err = selector.SpeedDemand(limb, i); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// run executes the generational loop and converts the incumbent.
func (e *gaEngine) run() (selector.Solution, Stats, error) {
	var (
		pop  = make([]individual, e.opts.Population)
		fits = make([]fitness, e.opts.Population)
		i    int
	)
	for i = 0; i < e.opts.Population; i++ {
		pop[i] = e.randomIndividual()
		fits[i] = e.evaluate(pop[i])
	}

	var (
		best    = pop[0]
		bestFit = fits[0]
	)
	for i = 1; i < e.opts.Population; i++ {
		if fits[i].better(bestFit) {
			best, bestFit = pop[i], fits[i]
		}
	}

	var gen int
	for gen = 0; gen < e.opts.Generations; gen++ {
		var next = make([]individual, 0, e.opts.Population)
		// Elitism of one: the incumbent survives verbatim.
		next = append(next, best)
		for len(next) < e.opts.Population {
			var child = pop[e.tournament(fits)]
			if e.rng.Float64() < e.opts.CrossoverRate {
				child = e.crossover(child, pop[e.tournament(fits)])
			}
			e.mutate(&child)
			next = append(next, child)
		}

		pop = next
		for i = 0; i < e.opts.Population; i++ {
			fits[i] = e.evaluate(pop[i])
			if fits[i].better(bestFit) {
				best, bestFit = pop[i], fits[i]
				e.log.Debug("incumbent improved",
					zap.Int("generation", gen),
					zap.Float64("violation", bestFit.violation),
					zap.Float64("cost", bestFit.cost))
			}
		}
	}

	var stats = Stats{
		Generations:   gen,
		Evaluations:   e.evals,
		BestViolation: bestFit.violation,
	}
	if bestFit.violation > violationEps {
		return selector.Solution{}, stats, ErrNoFeasible
	}

	return e.toSolution(best, bestFit), stats, nil
}

// evaluate scores one genome: summed torque and speed shortfalls, then
// total price.
func (e *gaEngine) evaluate(ind individual) fitness {
	e.evals++

	var (
		masses [selector.NumSlots]float64
		cost   float64
		i      int
	)
	for i = 0; i < selector.NumSlots; i++ {
		masses[i] = e.cols[ind[i]].Mass
		cost += e.cols[ind[i]].Price
	}

	var violation float64
	for i = 0; i < selector.NumSlots; i++ {
		need, err := selector.TorqueDemand(e.limb, i, masses)
		if err != nil {
			// Unreachable: i ranges over the fixed slot count.
			return fitness{violation: math.Inf(1), cost: math.Inf(1)}
		}
		if short := need - e.cols[ind[i]].Torque; short > 0 {
			violation += short
		}
		if short := e.speedNeeds[i] - e.cols[ind[i]].Speed; short > 0 {
			violation += short
		}
	}

	return fitness{violation: violation, cost: cost}
}

// randomIndividual draws one uniform genome.
func (e *gaEngine) randomIndividual() individual {
	var (
		ind individual
		i   int
	)
	for i = 0; i < selector.NumSlots; i++ {
		ind[i] = e.rng.Intn(len(e.cols))
	}

	return ind
}

// tournament picks the fittest of TournamentK uniform draws and returns
// its population index.
func (e *gaEngine) tournament(fits []fitness) int {
	var (
		winner = e.rng.Intn(len(fits))
		k      int
		c      int
	)
	for k = 1; k < e.opts.TournamentK; k++ {
		c = e.rng.Intn(len(fits))
		if fits[c].better(fits[winner]) {
			winner = c
		}
	}

	return winner
}

// crossover recombines two parents at a single cut point inside the slot
// range, so the child always mixes genes from both.
func (e *gaEngine) crossover(a, b individual) individual {
	var (
		cut   = 1 + e.rng.Intn(selector.NumSlots-1)
		child = a
		i     int
	)
	for i = cut; i < selector.NumSlots; i++ {
		child[i] = b[i]
	}

	return child
}

// mutate re-rolls each slot independently with MutationRate.
func (e *gaEngine) mutate(ind *individual) {
	var i int
	for i = 0; i < selector.NumSlots; i++ {
		if e.rng.Float64() < e.opts.MutationRate {
			ind[i] = e.rng.Intn(len(e.cols))
		}
	}
}

// toSolution converts the winning genome into the shared Solution form.
func (e *gaEngine) toSolution(ind individual, fit fitness) selector.Solution {
	var (
		sol selector.Solution
		i   int
	)
	for i = 0; i < selector.NumSlots; i++ {
		sol.Drives[i] = selector.Drive{
			Motor:  e.motorOf[ind[i]],
			Ratio:  e.cols[ind[i]].Ratio,
			Column: ind[i],
		}
	}
	sol.Cost = fit.cost
	// A heuristic result carries no optimality proof.
	sol.Suboptimal = true

	return sol
}
