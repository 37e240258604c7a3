// Package features - the feature-matrix builder.
//
// Build is a pure function of its finite inputs: it has no failure modes
// beyond input validation and must preserve column ordering exactly as the
// product of the two input orderings, so later decoding can invert it.
package features

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/drivesel/catalog"
)

// Matrix is the full feature encoding: NumRows attribute rows ×
// (|motors| · |ratios|) combination columns. Immutable once built.
type Matrix struct {
	data    *mat.Dense
	nratios int
	cols    int
}

// Build constructs the feature matrix for the given ordered motor list and
// ordered gear-ratio set.
//
// Contracts:
//   - motors non-empty; ratios non-empty, every ratio positive and finite.
//   - column index j encodes (motors[j/len(ratios)], ratios[j%len(ratios)]).
//
// Errors: ErrNoMotors, ErrNoRatios, ErrBadRatio.
//
// Complexity: O(|motors|·|ratios|) time and space.
func Build(motors []catalog.Motor, ratios []float64) (*Matrix, error) {
	if len(motors) == 0 {
		return nil, ErrNoMotors
	}
	if len(ratios) == 0 {
		return nil, ErrNoRatios
	}

	var r float64
	for _, r = range ratios {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, ErrBadRatio
		}
	}

	var (
		cols  = len(motors) * len(ratios)
		dense = mat.NewDense(NumRows, cols, nil)
		mi    int
		ri    int
		j     int
	)
	for mi = 0; mi < len(motors); mi++ {
		for ri = 0; ri < len(ratios); ri++ {
			j = mi*len(ratios) + ri
			dense.Set(RowTorque, j, motors[mi].StallTorque*ratios[ri])
			dense.Set(RowSpeed, j, motors[mi].FreeSpeed/ratios[ri])
			dense.Set(RowPrice, j, motors[mi].Price)
			dense.Set(RowMass, j, motors[mi].Mass)
			dense.Set(RowSpeedFn, j, 0)
			dense.Set(RowRatio, j, ratios[ri])
		}
	}

	return &Matrix{data: dense, nratios: len(ratios), cols: cols}, nil
}

// Cols returns the number of combination columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the attribute at (row, col). Panics on out-of-range indices,
// matching gonum's dense-access contract; use Column for checked access.
func (m *Matrix) At(row, col int) float64 { return m.data.At(row, col) }

// Column returns the decoded field view of column j.
//
// Errors: ErrColumnOutOfRange.
func (m *Matrix) Column(j int) (Column, error) {
	if j < 0 || j >= m.cols {
		return Column{}, ErrColumnOutOfRange
	}

	return Column{
		Index:   j,
		Torque:  m.data.At(RowTorque, j),
		Speed:   m.data.At(RowSpeed, j),
		Price:   m.data.At(RowPrice, j),
		Mass:    m.data.At(RowMass, j),
		SpeedFn: m.data.At(RowSpeedFn, j),
		Ratio:   m.data.At(RowRatio, j),
	}, nil
}

// Row copies attribute row i into a fresh slice of length Cols.
// Row indices are the Row* constants; out-of-range indices panic.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.data)
}
