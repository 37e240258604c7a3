package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drivesel/selector"
	"github.com/katalvlaran/drivesel/solve"
	"github.com/katalvlaran/drivesel/solve/lpsolve"
)

// oracleFactory maps the --backend flag to a fresh-oracle constructor.
// Each exploration needs its own oracle, hence a factory and not an
// instance.
func oracleFactory(name string) (func() solve.Oracle, error) {
	switch name {
	case "lpsolve":
		return func() solve.Oracle { return lpsolve.New() }, nil
	case "exhaustive":
		return func() solve.Oracle { return solve.NewExhaustive() }, nil
	default:
		return nil, fmt.Errorf("drivesel: unknown backend %q (want lpsolve or exhaustive)", name)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	motors, ratios, limb, err := loadInputs()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	factory, err := oracleFactory(flagBackend)
	if err != nil {
		return err
	}

	report, err := selector.Select(factory, motors, ratios, limb,
		selector.WithMaxAlternatives(flagMaxAlt),
		selector.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := os.Stdout
	fmt.Fprintf(out, "optimal total price: %.2f\n", report.Objective)
	printSolution(out, report.Optimal)

	if flagAll {
		fmt.Fprintf(out, "\n%d tied alternative(s):\n", len(report.Ties))
		var i int
		for i = range report.Ties {
			fmt.Fprintf(out, "alternative %d:\n", i+1)
			printSolution(out, report.Ties[i])
		}
	}
	if flagRefine {
		fmt.Fprintf(out, "\nrefined by total gear reduction (%.4f):\n", report.Refined.TotalReduction())
		printSolution(out, report.Refined)
	}

	return nil
}
