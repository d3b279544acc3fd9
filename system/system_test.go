package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machism0/nbp/geom"
	"github.com/machism0/nbp/neighbor"
)

func TestNewInfoRoundsCharLength(t *testing.T) {
	// cutoff = 3 * 1 = 3: a requested length of 10 rounds up to 12.
	info, err := NewInfo(10, []float64{1}, nil, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12.0, info.CharLength())
	assert.Equal(t, 3.0, info.Cutoff())
	assert.Equal(t, 4.0, info.Skin())
	assert.Equal(t, [3]float64{12, 12, 12}, info.BoxDim())
	assert.Equal(t, 12.0*12*12, info.Volume())
}

func TestNewInfoWorstSigma(t *testing.T) {
	info, err := NewInfo(30, []float64{0.5, 1.2, 0.8}, nil, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.2, info.WorstSigma())
	assert.InDelta(t, 3.6, info.Cutoff(), 1e-12)
	assert.InDelta(t, 4.8, info.Skin(), 1e-12)
}

func TestNewInfoValidation(t *testing.T) {
	_, err := NewInfo(0, []float64{1}, nil, 3, 4)
	assert.ErrorIs(t, err, ErrCharLength)

	_, err = NewInfo(10, nil, nil, 3, 4)
	assert.ErrorIs(t, err, ErrSigma)

	_, err = NewInfo(10, []float64{1, -1}, nil, 3, 4)
	assert.ErrorIs(t, err, ErrSigma)

	_, err = NewInfo(10, []float64{1}, nil, 3, 3)
	assert.ErrorIs(t, err, ErrRadiusFactors)

	// Rounded length 3 cannot hold a cutoff sphere of radius 3.
	_, err = NewInfo(1, []float64{1}, nil, 3, 4)
	assert.ErrorIs(t, err, ErrCutoffTooLarge)
}

func testSystem(t *testing.T) *System {
	t.Helper()

	positions := []geom.Vec{{0, 0, 0}, {9, 0, 0}, {5, 5, 5}}
	info, err := NewInfo(10, []float64{1}, []float64{1, -1, 1}, 3, 4)
	require.NoError(t, err)

	sys, err := New(info, NewState(positions), 0)
	require.NoError(t, err)
	return sys
}

func TestSystemNeighborsAcrossBoundary(t *testing.T) {
	sys := testSystem(t)

	// Box rounds to 12, so 0 and 9 sit 3 apart through the boundary,
	// exactly on the cutoff.
	ids, dists, err := sys.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, ids)
	assert.InDelta(t, 3.0, dists[0], 1e-12)

	nb := sys.NeighborList()
	assert.Equal(t, 3, nb.Len())
	assert.Equal(t, 3, nb.CellsPerRow())
	assert.InDelta(t, 4.0, nb.CellLength(), 1e-12)
}

func TestSystemRequiresChargePerParticle(t *testing.T) {
	info, err := NewInfo(10, []float64{1}, []float64{1, -1}, 3, 4)
	require.NoError(t, err)

	_, err = New(info, NewState([]geom.Vec{{0, 0, 0}}), 0)
	assert.ErrorIs(t, err, ErrChargeCount)
}

func TestSystemStepAdoptsState(t *testing.T) {
	sys := testSystem(t)

	moves := []geom.Vec{{0.2, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	next := sys.State().Displaced(moves)
	rebuilt, err := sys.Step(next)
	require.NoError(t, err)
	assert.False(t, rebuilt, "drift below the skin margin")
	assert.Same(t, next, sys.State())
	assert.Equal(t, 0, sys.Rebuilds())

	// Push the same particle past the margin of 1.
	moves[0][0] = 1.5
	next = sys.State().Displaced(moves)
	rebuilt, err = sys.Step(next)
	require.NoError(t, err)
	assert.True(t, rebuilt)
	assert.Equal(t, 1, sys.Rebuilds())
}

func TestSystemStepRejectsMismatchedState(t *testing.T) {
	sys := testSystem(t)
	before := sys.State()

	_, err := sys.Step(NewState([]geom.Vec{{0, 0, 0}}))
	assert.ErrorIs(t, err, neighbor.ErrPositionCount)
	assert.Same(t, before, sys.State(), "state kept on error")
}
