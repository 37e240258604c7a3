package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drivesel/catalog"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoadMotors_RoundTrip loads a well-formed catalog file and checks
// order and field mapping.
func TestLoadMotors_RoundTrip(t *testing.T) {
	path := writeFile(t, "motors.json", `[
		{"id":"NEMA14","tau_stall":0.098,"omega_free":139.626,"price":12.95,"mass":0.12},
		{"id":"NEMA17","tau_stall":0.45,"omega_free":62.8,"price":21.50,"mass":0.35}
	]`)

	ms, err := catalog.LoadMotors(path)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "NEMA14", ms[0].ID, "catalog order must be file order")
	assert.InDelta(t, 0.45, ms[1].StallTorque, 1e-12)
}

// TestLoadMotors_FieldValidation rejects a record with a missing/zero field.
func TestLoadMotors_FieldValidation(t *testing.T) {
	path := writeFile(t, "motors.json", `[
		{"id":"BROKEN","tau_stall":0,"omega_free":1,"price":1,"mass":1}
	]`)

	_, err := catalog.LoadMotors(path)
	assert.ErrorIs(t, err, catalog.ErrBadMotor)
}

// TestLoadMotors_MissingFile surfaces the underlying I/O error with path context.
func TestLoadMotors_MissingFile(t *testing.T) {
	_, err := catalog.LoadMotors(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "nope.json")
}

// TestLoadLimb_RoundTrip loads a well-formed limb file.
func TestLoadLimb_RoundTrip(t *testing.T) {
	path := writeFile(t, "limb.json", `{
		"tip_force": 0.05, "tip_velocity": 0.05,
		"min_links": [{"radius":0.05},{"radius":0.05},{"radius":0.05}],
		"max_links": [{"radius":0.1},{"radius":0.1},{"radius":0.1}]
	}`)

	l, err := catalog.LoadLimb(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.30, l.Reach(0, catalog.MaxExtension), 1e-12)
}

// TestLoadLimb_BadDemand rejects a limb with a non-positive tip demand.
func TestLoadLimb_BadDemand(t *testing.T) {
	path := writeFile(t, "limb.json", `{
		"tip_force": -1, "tip_velocity": 0.05,
		"min_links": [{"radius":0.05},{"radius":0.05},{"radius":0.05}],
		"max_links": [{"radius":0.1},{"radius":0.1},{"radius":0.1}]
	}`)

	_, err := catalog.LoadLimb(path)
	assert.ErrorIs(t, err, catalog.ErrBadLimb)
}
