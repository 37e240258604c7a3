package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/features"
)

var testMotors = catalog.Motors{
	{ID: "NEMA14", StallTorque: 0.098, FreeSpeed: 139.626, Price: 12.95, Mass: 0.12},
	{ID: "NEMA17", StallTorque: 0.45, FreeSpeed: 62.8, Price: 21.50, Mass: 0.35},
}

var testRatios = []float64{0.021, 0.048, 0.077}

// TestBuild_Validation covers the three input sentinels.
func TestBuild_Validation(t *testing.T) {
	_, err := features.Build(nil, testRatios)
	assert.ErrorIs(t, err, features.ErrNoMotors)

	_, err = features.Build(testMotors, nil)
	assert.ErrorIs(t, err, features.ErrNoRatios)

	_, err = features.Build(testMotors, []float64{0.021, -1})
	assert.ErrorIs(t, err, features.ErrBadRatio)
}

// TestBuild_Shape verifies column count = |motors| × |ratios|.
func TestBuild_Shape(t *testing.T) {
	m, err := features.Build(testMotors, testRatios)
	require.NoError(t, err)
	assert.Equal(t, len(testMotors)*len(testRatios), m.Cols())
}

// TestBuild_ColumnOrderAndScaling verifies the motor-major column layout
// and the gearing arithmetic of every row.
func TestBuild_ColumnOrderAndScaling(t *testing.T) {
	m, err := features.Build(testMotors, testRatios)
	require.NoError(t, err)

	var (
		mi, ri int
		col    features.Column
	)
	for mi = 0; mi < len(testMotors); mi++ {
		for ri = 0; ri < len(testRatios); ri++ {
			col, err = m.Column(mi*len(testRatios) + ri)
			require.NoError(t, err)

			motor, ratio := testMotors[mi], testRatios[ri]
			assert.InDelta(t, motor.StallTorque*ratio, col.Torque, 1e-12)
			assert.InDelta(t, motor.FreeSpeed/ratio, col.Speed, 1e-12)
			assert.Equal(t, motor.Price, col.Price, "price is gearing-invariant")
			assert.Equal(t, motor.Mass, col.Mass, "mass is gearing-invariant")
			assert.Zero(t, col.SpeedFn, "placeholder row stays zero")
			assert.Equal(t, ratio, col.Ratio)
		}
	}
}

// TestColumn_OutOfRange checks the checked accessor's bounds.
func TestColumn_OutOfRange(t *testing.T) {
	m, err := features.Build(testMotors, testRatios)
	require.NoError(t, err)

	_, err = m.Column(-1)
	assert.ErrorIs(t, err, features.ErrColumnOutOfRange)
	_, err = m.Column(m.Cols())
	assert.ErrorIs(t, err, features.ErrColumnOutOfRange)
}

// TestRow_CopyIsStable verifies Row returns the expected attribute slice.
func TestRow_CopyIsStable(t *testing.T) {
	m, err := features.Build(testMotors, testRatios)
	require.NoError(t, err)

	prices := m.Row(features.RowPrice)
	require.Len(t, prices, m.Cols())
	assert.Equal(t, 12.95, prices[0])
	assert.Equal(t, 21.50, prices[len(testRatios)])
}
