// Package catalog - record types and validation sentinels.
//
// Design principles:
//   - Records are plain value types; no hidden state, no setters.
//   - Strict sentinels: callers branch with errors.Is, never on message text.
//   - Validation is explicit (Motors.Validate / Limb.Validate), so pure
//     in-memory construction stays allocation-free and silent.
package catalog

import (
	"errors"
	"math"
)

// Sentinel errors returned by catalog validation and loading.
var (
	// ErrNoMotors indicates an empty motor catalog.
	ErrNoMotors = errors.New("catalog: motor list is empty")

	// ErrBadMotor indicates a motor record with a non-positive or
	// non-finite physical field (torque, speed, price, mass) or an empty ID.
	ErrBadMotor = errors.New("catalog: invalid motor record")

	// ErrDuplicateID indicates two catalog entries sharing the same ID.
	ErrDuplicateID = errors.New("catalog: duplicate motor id")

	// ErrAmbiguousMotor indicates two distinct motors sharing the same
	// (price, mass) pair. Selection decoding identifies motors by exactly
	// that pair, so such a catalog cannot be decoded unambiguously.
	ErrAmbiguousMotor = errors.New("catalog: motors not distinguishable by price and mass")

	// ErrBadLimb indicates a limb description with a non-positive tip
	// force, tip velocity, or link radius.
	ErrBadLimb = errors.New("catalog: invalid limb description")
)

// NumLinks is the fixed number of limb segments. The physical equations in
// the selector are written for exactly three links; catalogs describing a
// different segment count are rejected at the type level by the [3]Link
// arrays below.
const NumLinks = 3

// Motor is one immutable catalog record.
//
// StallTorque and FreeSpeed are the two endpoints of the motor's linear
// torque/speed curve; Price and Mass are gearing-invariant and double as
// the motor's decode identity.
type Motor struct {
	ID          string  `json:"id" validate:"required"`
	StallTorque float64 `json:"tau_stall" validate:"gt=0"`
	FreeSpeed   float64 `json:"omega_free" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gt=0"`
	Mass        float64 `json:"mass" validate:"gt=0"`
}

// valid reports whether every physical field is positive and finite.
func (m Motor) valid() bool {
	if m.ID == "" {
		return false
	}
	var f float64
	for _, f = range []float64{m.StallTorque, m.FreeSpeed, m.Price, m.Mass} {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// Motors is an ordered motor catalog. Order is load-bearing: feature-matrix
// columns are laid out motor-major in this exact order.
type Motors []Motor

// Validate checks the whole catalog:
//
//   - non-empty (ErrNoMotors);
//   - every record positive and finite (ErrBadMotor);
//   - unique IDs (ErrDuplicateID);
//   - unique (price, mass) pairs (ErrAmbiguousMotor) — the decode-identity
//     guard the original tooling left unvalidated.
//
// Complexity: O(n) time, O(n) space for the identity sets.
func (ms Motors) Validate() error {
	if len(ms) == 0 {
		return ErrNoMotors
	}

	var (
		ids      = make(map[string]struct{}, len(ms))
		identity = make(map[[2]float64]struct{}, len(ms))
		m        Motor
	)
	for _, m = range ms {
		if !m.valid() {
			return ErrBadMotor
		}
		if _, ok := ids[m.ID]; ok {
			return ErrDuplicateID
		}
		ids[m.ID] = struct{}{}

		key := [2]float64{m.Price, m.Mass}
		if _, ok := identity[key]; ok {
			return ErrAmbiguousMotor
		}
		identity[key] = struct{}{}
	}

	return nil
}

// Link is one limb segment's geometry.
type Link struct {
	Radius float64 `json:"radius" validate:"gt=0"`
}

// Extension selects which link configuration a geometric query refers to.
//
//	MinExtension — the limb folded to its shortest reach.
//	MaxExtension — the limb stretched to its longest reach.
type Extension int

const (
	// MinExtension uses the minimum-configuration link radii.
	MinExtension Extension = iota

	// MaxExtension uses the maximum-configuration link radii.
	MaxExtension
)

// Limb is the kinematic/dynamic description of a three-segment limb.
// Links are indexed outer-to-inner: index 0 is the shoulder-most link,
// index 2 the tip-most.
type Limb struct {
	TipForce    float64        `json:"tip_force" validate:"gt=0"`
	TipVelocity float64        `json:"tip_velocity" validate:"gt=0"`
	MinLinks    [NumLinks]Link `json:"min_links" validate:"dive"`
	MaxLinks    [NumLinks]Link `json:"max_links" validate:"dive"`
}

// Validate checks that the tip demands and every link radius are positive
// and finite. Returns ErrBadLimb otherwise.
func (l Limb) Validate() error {
	var f float64
	for _, f = range []float64{l.TipForce, l.TipVelocity} {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrBadLimb
		}
	}

	var i int
	for i = 0; i < NumLinks; i++ {
		if l.MinLinks[i].Radius <= 0 || l.MaxLinks[i].Radius <= 0 {
			return ErrBadLimb
		}
		if math.IsInf(l.MinLinks[i].Radius, 0) || math.IsInf(l.MaxLinks[i].Radius, 0) {
			return ErrBadLimb
		}
	}

	return nil
}

// Reach returns the sum of radial lengths from link i (inclusive) out to
// the tip, in the requested extension. This is the moment arm seen by the
// motor slot at link i and the radius the tip velocity is divided by.
//
// Contracts: 0 ≤ i < NumLinks (out-of-range returns 0).
//
// Complexity: O(NumLinks−i).
func (l Limb) Reach(i int, ext Extension) float64 {
	if i < 0 || i >= NumLinks {
		return 0
	}

	var (
		sum float64
		j   int
	)
	for j = i; j < NumLinks; j++ {
		if ext == MaxExtension {
			sum += l.MaxLinks[j].Radius
		} else {
			sum += l.MinLinks[j].Radius
		}
	}

	return sum
}
