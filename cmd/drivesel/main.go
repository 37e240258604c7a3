// drivesel - command-line front end for the drivetrain selection library.
//
// Subcommands:
//   - select: exact optimization (primary solve, tie enumeration, reduction
//     refinement) over a MILP backend.
//   - evolve: genetic search over the same assignment space.
//
// Inputs come from --motors/--limb/--ratios flags or a single --config
// run.yaml carrying the same fields; flags win over the file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "drivesel:", err)
		os.Exit(1)
	}
}
