package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/drivesel/selector"
)

// printSolution writes one assignment in the plain-text report form, one
// slot per line from the innermost (base) joint outward.
func printSolution(w io.Writer, sol selector.Solution) {
	var (
		i int
		d selector.Drive
	)
	for i = 0; i < selector.NumSlots; i++ {
		d = sol.Drives[i]
		fmt.Fprintf(w, "  slot %d: %-16s ratio %9.4f  torque %8.4f N·m  speed %9.4f rad/s  price %7.2f\n",
			i, d.Motor.ID, d.Ratio,
			d.Motor.StallTorque*d.Ratio,
			d.Motor.FreeSpeed/d.Ratio,
			d.Motor.Price)
	}
	if sol.Suboptimal {
		fmt.Fprintln(w, "  note: produced from a time-limited or heuristic search")
	}
}
