// Package selector - closed-form demand helpers.
//
// These compute the same physical requirements the formulator encodes as
// linear rows, but for concrete motor masses. They exist for consumers
// that evaluate candidate assignments directly — the evolutionary search
// and the property tests — so the physics lives in exactly one place.
package selector

import "github.com/katalvlaran/drivesel/catalog"

// TorqueDemand returns the stall torque slot `slot` must provide, given
// the concrete mass (kg) of the motor mounted at every slot. Masses at
// slot indices ≤ slot are ignored: a motor never lifts itself or anything
// inboard of it.
//
//	demand = F_tip · R(slot) + g · Σ_{k>slot} masses[k] · R(k)
//
// with R at the maximum extension (worst-case moment arms).
//
// Errors: ErrBadSlot.
func TorqueDemand(limb catalog.Limb, slot int, masses [NumSlots]float64) (float64, error) {
	if slot < 0 || slot >= NumSlots {
		return 0, ErrBadSlot
	}

	var (
		demand = limb.TipForce * limb.Reach(slot, catalog.MaxExtension)
		k      int
	)
	for k = slot + 1; k < NumSlots; k++ {
		demand += Gravity * masses[k] * limb.Reach(k, catalog.MaxExtension)
	}

	return demand, nil
}

// SpeedDemand returns the free angular speed slot `slot` must provide:
// the tip velocity over the minimum-extension reach from that slot out.
//
// Errors: ErrBadSlot.
func SpeedDemand(limb catalog.Limb, slot int) (float64, error) {
	if slot < 0 || slot >= NumSlots {
		return 0, ErrBadSlot
	}

	return limb.TipVelocity / limb.Reach(slot, catalog.MinExtension), nil
}
