// Package catalog defines the read-only input records consumed by the
// selection core: the motor catalog, the gear-ratio set, and the limb's
// kinematic description.
//
// All records are loaded (or constructed) once per run and never mutated
// afterwards; every downstream package treats them as immutable.
//
// Records:
//
//   - Motor — identifier, stall torque τ_stall (N·m), free angular speed
//     ω_free (rad/s), price, mass (kg). Decoding a solved selection relies
//     on (price, mass) being unique per motor; Motors.Validate enforces it.
//   - Link  — per-link geometry, currently the radial length (m).
//   - Limb  — required tip force (N) and tip velocity (m/s) plus the three
//     link records at both the minimum and the maximum extension.
//
// Helpers:
//
//   - LoadMotors / LoadLimb — JSON loaders with field validation
//     (go-playground/validator), matching the catalog files the original
//     tooling produced.
//   - WithReciprocals — expands a ratio set with the reciprocal of every
//     entry, since a reduction and its inverse are both candidate mounting
//     orientations.
//
// Errors (sentinel):
//
//   - ErrNoMotors, ErrBadMotor, ErrDuplicateID, ErrAmbiguousMotor
//   - ErrBadLimb
package catalog
