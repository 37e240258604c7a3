// Package features - the selection decoder.
//
// Rationale (succinct):
//  1. Price and mass are gearing-invariant, so they identify the motor
//     exactly; the catalog guarantees the pair is unique (see
//     catalog.Motors.Validate).
//  2. Torque and speed were produced by multiplying/dividing by the
//     embedded ratio, so they are matched within a named tolerance after
//     dividing the gearing back out.
//  3. A miss is an invariant violation: either the catalog was mutated
//     between build and decode, or the tolerance is too tight for the
//     ratio set in use. Callers should treat ErrDecodeMismatch as fatal.
package features

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/drivesel/catalog"
)

// Decode maps one feature column back to the catalog motor it was built
// from. tol bounds the torque/speed round-trip error and must be positive;
// it is load-bearing for correctness, hence an explicit parameter rather
// than an implicit default.
//
// Errors: ErrBadTolerance, ErrBadRatio (corrupt column), ErrDecodeMismatch.
//
// Complexity: O(|motors|).
func Decode(col Column, motors []catalog.Motor, tol float64) (catalog.Motor, error) {
	if tol <= 0 {
		return catalog.Motor{}, ErrBadTolerance
	}
	if col.Ratio <= 0 {
		return catalog.Motor{}, ErrBadRatio
	}

	// Divide the gearing back out once; compare against raw curve endpoints.
	var (
		rawTorque = col.Torque / col.Ratio
		rawSpeed  = col.Speed * col.Ratio
		m         catalog.Motor
	)
	for _, m = range motors {
		if m.Price != col.Price || m.Mass != col.Mass {
			continue
		}
		if !scalar.EqualWithinAbs(m.StallTorque, rawTorque, tol) {
			continue
		}
		if !scalar.EqualWithinAbs(m.FreeSpeed, rawSpeed, tol) {
			continue
		}

		return m, nil
	}

	return catalog.Motor{}, ErrDecodeMismatch
}
