package features

import "errors"

// Sentinel errors returned by the builder and the decoder.
var (
	// ErrNoMotors indicates an empty motor list was passed to Build.
	ErrNoMotors = errors.New("features: motor list is empty")

	// ErrNoRatios indicates an empty gear-ratio set was passed to Build.
	ErrNoRatios = errors.New("features: ratio set is empty")

	// ErrBadRatio indicates a non-positive or non-finite gear ratio.
	ErrBadRatio = errors.New("features: gear ratio must be positive and finite")

	// ErrColumnOutOfRange indicates a column index outside [0, Cols).
	ErrColumnOutOfRange = errors.New("features: column index out of range")

	// ErrBadTolerance indicates a non-positive decode tolerance.
	ErrBadTolerance = errors.New("features: tolerance must be positive")

	// ErrDecodeMismatch indicates that no catalog motor matches a feature
	// column. The matrix and the catalog are out of sync — a programming /
	// catalog-consistency invariant violation.
	ErrDecodeMismatch = errors.New("features: feature column matches no catalog motor")
)

// Row indices of the feature matrix. The order is fixed and load-bearing:
// the constraint formulator and the decoder both address rows by these
// constants.
const (
	// RowTorque is τ_stall · ratio, the geared stall torque (N·m).
	RowTorque = 0

	// RowSpeed is ω_free / ratio, the geared free speed (rad/s).
	RowSpeed = 1

	// RowPrice is the motor price, unaffected by gearing.
	RowPrice = 2

	// RowMass is the motor mass (kg), unaffected by gearing.
	RowMass = 3

	// RowSpeedFn is a reserved placeholder row, always zero.
	RowSpeedFn = 4

	// RowRatio is the embedded gear ratio itself; it is the secondary
	// objective row (total gear reduction) and the decode key.
	RowRatio = 5

	// NumRows is the fixed attribute count per column.
	NumRows = 6
)

// Column is one (Motor, GearRatio) combination in decoded field form,
// together with its stable matrix index.
type Column struct {
	Index   int
	Torque  float64
	Speed   float64
	Price   float64
	Mass    float64
	SpeedFn float64
	Ratio   float64
}
