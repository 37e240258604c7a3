package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drivesel/catalog"
	"github.com/katalvlaran/drivesel/selector"
)

// TestRefine_BeforeSolve: staging is enforced.
func TestRefine_BeforeSolve(t *testing.T) {
	s := newSession(t, catalog.Motors{nema14}, []float64{20}, lowDemandLimb(), selector.DefaultOptions())

	_, err := s.RefineByReduction()
	assert.ErrorIs(t, err, selector.ErrNotSolved)
}

// TestRefine_PicksMaxReduction: among the 8 tied selections over ratios
// {20, 40}, the refiner must take 40:1 at every slot.
func TestRefine_PicksMaxReduction(t *testing.T) {
	s := newSession(t, catalog.Motors{nema14}, []float64{20, 40}, lowDemandLimb(), selector.DefaultOptions())

	first, err := s.Solve()
	require.NoError(t, err)
	require.InDelta(t, 38.85, first.Cost, 1e-9)

	refined, err := s.RefineByReduction()
	require.NoError(t, err)

	assert.InDelta(t, 120, refined.TotalReduction(), 1e-9, "40+40+40 is the maximum total reduction")
	assert.LessOrEqual(t, refined.Cost, first.Cost+1e-9, "refinement never pays above the optimum")
	var i int
	for i = 0; i < selector.NumSlots; i++ {
		assert.Equal(t, 40.0, refined.Drives[i].Ratio, "slot %d", i)
	}
}

// TestRefine_SpendsSession: refinement is the session's one exploration.
func TestRefine_SpendsSession(t *testing.T) {
	s := newSession(t, catalog.Motors{nema14}, []float64{20, 40}, lowDemandLimb(), selector.DefaultOptions())

	_, err := s.Solve()
	require.NoError(t, err)
	_, err = s.RefineByReduction()
	require.NoError(t, err)

	_, err = s.EnumerateTies()
	assert.ErrorIs(t, err, selector.ErrSessionSpent)
}
