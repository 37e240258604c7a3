// Package selector_test — benchmarks for the drivetrain selection pipeline.
// Scope:
//   - Session.Solve over the exhaustive reference oracle (model build + one
//     full enumeration of the binary assignment space).
//   - EnumerateTies on a fully tied instance (worst case: every cut re-solve
//     yields another frontier member until the model goes infeasible).
//   - Select end-to-end, both explorations over fresh sessions.
//
// Policy:
//   - Deterministic inputs only; the exhaustive oracle has no randomness.
//   - Instances sized so the 6^3..4^3 assignment spaces stay fast on CI.
//   - Catalog and limb fixtures built outside the timer; measure the solve.
package selector_test

import (
	"testing"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/selector"
	"github.com/katalvlaran/drivesel/solve"
)

// benchMotors is a single-motor catalog; with four ratios per slot the
// assignment space is 4^3 = 64 and every assignment ties on price.
var benchMotors = catalog.Motors{nema14}

// benchRatios keeps all four candidates feasible at every slot of the
// reference limb, so the tie frontier is the full assignment space.
var benchRatios = []float64{15, 20, 30, 40}

// BenchmarkSolve measures a single optimize over the exhaustive oracle,
// including session construction (matrix build + row formulation).
func BenchmarkSolve(b *testing.B) {
	var (
		limb = lowDemandLimb()
		opts = selector.DefaultOptions()
		i    int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i = 0; i < b.N; i++ {
		s, err := selector.NewSession(solve.NewExhaustive(), benchMotors, benchRatios, limb, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = s.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEnumerateTies_Frontier64 peels a 64-member frontier: 63 cut
// re-solves plus the terminal infeasible probe.
func BenchmarkEnumerateTies_Frontier64(b *testing.B) {
	var (
		limb = lowDemandLimb()
		opts = selector.DefaultOptions()
		i    int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i = 0; i < b.N; i++ {
		s, err := selector.NewSession(solve.NewExhaustive(), benchMotors, benchRatios, limb, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = s.Solve(); err != nil {
			b.Fatal(err)
		}
		ties, err := s.EnumerateTies()
		if err != nil {
			b.Fatal(err)
		}
		if len(ties) != 63 {
			b.Fatalf("expected 63 tied alternatives, got %d", len(ties))
		}
	}
}

// BenchmarkSelect measures the full dispatch: enumeration session plus
// refinement session, each over a fresh exhaustive oracle.
func BenchmarkSelect(b *testing.B) {
	var (
		limb = lowDemandLimb()
		i    int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i = 0; i < b.N; i++ {
		if _, err := selector.Select(
			func() solve.Oracle { return solve.NewExhaustive() },
			benchMotors,
			benchRatios,
			limb,
		); err != nil {
			b.Fatal(err)
		}
	}
}
