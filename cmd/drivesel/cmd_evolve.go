package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drivesel/evolve"
)

func runEvolve(cmd *cobra.Command, args []string) error {
	motors, ratios, limb, err := loadInputs()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := evolve.Options{
		Population:    flagPopulation,
		Generations:   flagGens,
		TournamentK:   flagTournament,
		MutationRate:  flagMutation,
		CrossoverRate: flagCrossover,
		Seed:          flagSeed,
		Logger:        logger,
	}

	sol, stats, err := evolve.Evolve(motors, ratios, limb, opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	fmt.Fprintf(out, "best total price: %.2f (heuristic, no optimality proof)\n", sol.Cost)
	printSolution(out, sol)
	fmt.Fprintf(out, "\ngenerations: %d, evaluations: %d\n", stats.Generations, stats.Evaluations)

	return nil
}
