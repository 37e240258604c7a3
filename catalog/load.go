// Package catalog - JSON loaders for the motor catalog and limb files.
//
// The file formats match the original tooling:
//
//	motors.json: [ {"id": "...", "tau_stall": .., "omega_free": .., "price": .., "mass": ..}, ... ]
//	limb.json:   { "tip_force": .., "tip_velocity": ..,
//	               "min_links": [{"radius": ..} x3], "max_links": [{"radius": ..} x3] }
//
// Field-level validation is delegated to go-playground/validator (struct
// tags on the record types); catalog-level invariants (uniqueness, decode
// identity) still go through Motors.Validate.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// fileValidator is shared across loads; validator instances cache struct
// metadata and are safe for concurrent use.
var fileValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadMotors reads and validates an ordered motor catalog from a JSON file.
//
// Errors: os/json errors wrapped with the path; ErrBadMotor for records
// failing field validation; Motors.Validate sentinels for catalog-level
// violations.
func LoadMotors(path string) (Motors, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var ms Motors
	if err = json.Unmarshal(raw, &ms); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	var m Motor
	for _, m = range ms {
		if err = fileValidator.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadMotor, m.ID, err)
		}
	}
	if err = ms.Validate(); err != nil {
		return nil, err
	}

	return ms, nil
}

// LoadLimb reads and validates a limb description from a JSON file.
func LoadLimb(path string) (Limb, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Limb{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var l Limb
	if err = json.Unmarshal(raw, &l); err != nil {
		return Limb{}, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	if err = fileValidator.Struct(l); err != nil {
		return Limb{}, fmt.Errorf("%w: %v", ErrBadLimb, err)
	}
	if err = l.Validate(); err != nil {
		return Limb{}, err
	}

	return l, nil
}
