package main

import (
	"github.com/spf13/cobra"
)

// Flag variables shared across the command tree.
var (
	flagConfig        string
	flagMotors        string
	flagLimb          string
	flagRatios        []float64
	flagNoReciprocals bool
	flagVerbose       bool

	// select flags
	flagBackend string
	flagAll     bool
	flagRefine  bool
	flagMaxAlt  int

	// evolve flags
	flagPopulation int
	flagGens       int
	flagTournament int
	flagMutation   float64
	flagCrossover  float64
	flagSeed       int64

	rootCmd = &cobra.Command{
		Use:   "drivesel",
		Short: "Pick motor and gear-ratio pairs for a three-link limb",
		Long: `drivesel sizes the drivetrain of a three-link robotic limb: given a
motor catalog, a candidate gear-ratio set and the limb geometry, it finds
the cheapest (motor, ratio) assignment that satisfies the torque demand at
full extension and the tip-speed demand when folded.`,
		SilenceUsage: true,
	}

	selectCmd = &cobra.Command{
		Use:   "select",
		Short: "Exact optimization over a MILP backend",
		Long: `select proves the cheapest feasible assignment, enumerates every
alternative tied at that price, and refines the tie by maximum total gear
reduction. Use --all and --refine to print the extra explorations.`,
		RunE: runSelect,
	}

	evolveCmd = &cobra.Command{
		Use:   "evolve",
		Short: "Genetic search over the assignment space",
		Long: `evolve runs a deterministic genetic search with feasibility-first
fitness. It needs no solver backend and scales to large catalogs, but the
result carries no optimality proof.`,
		RunE: runEvolve,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "run.yaml carrying motors/limb/ratios (flags win)")
	pf.StringVar(&flagMotors, "motors", "", "motor catalog JSON file")
	pf.StringVar(&flagLimb, "limb", "", "limb geometry JSON file")
	pf.Float64SliceVar(&flagRatios, "ratios", nil, "candidate gear ratios, comma separated")
	pf.BoolVar(&flagNoReciprocals, "no-reciprocals", false, "do not add reciprocal ratios for the flipped mounting")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "development logging at debug level")

	sf := selectCmd.Flags()
	sf.StringVar(&flagBackend, "backend", "lpsolve", "MILP backend: lpsolve or exhaustive")
	sf.BoolVar(&flagAll, "all", false, "print every tied-optimal alternative")
	sf.BoolVar(&flagRefine, "refine", false, "print the maximum-reduction solution among the ties")
	sf.IntVar(&flagMaxAlt, "max-alternatives", 0, "cap on enumerated alternatives (0 = no cap)")

	ef := evolveCmd.Flags()
	ef.IntVar(&flagPopulation, "population", 64, "individuals per generation")
	ef.IntVar(&flagGens, "generations", 200, "evolution budget")
	ef.IntVar(&flagTournament, "tournament", 3, "tournament size for parent selection")
	ef.Float64Var(&flagMutation, "mutation-rate", 0.15, "per-slot mutation probability")
	ef.Float64Var(&flagCrossover, "crossover-rate", 0.85, "crossover probability")
	ef.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = stable default)")

	rootCmd.AddCommand(selectCmd, evolveCmd)
}
