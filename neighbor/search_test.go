package neighbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machism0/nbp/geom"
)

func newTestSearch(
	t *testing.T, boxLength, cutoff, skin float64, positions []geom.Vec,
) *search {
	t.Helper()

	sg, err := newSubcellGrid(boxLength, skin)
	require.NoError(t, err)

	wrapped := make([]geom.Vec, len(positions))
	for i := range positions {
		wrapped[i] = positions[i]
		wrapped[i].Wrap(boxLength)
	}
	ci, err := buildCellIndex(sg, wrapped)
	require.NoError(t, err)

	return &search{
		boxLength: boxLength,
		cutoff:    cutoff,
		grid:      sg,
		index:     ci,
		wrapped:   wrapped,
	}
}

func TestStencilCoversWholeGridAtThreeCells(t *testing.T) {
	// With 3 subcells per row the 3x3x3 stencil spans the entire grid.
	s := newTestSearch(t, 9, 2, 3, []geom.Vec{{0.5, 0.5, 0.5}})

	var cells [stencilSize]int
	s.stencil(&s.wrapped[0], &cells)

	seen := map[int]bool{}
	for _, c := range cells {
		seen[c] = true
	}
	assert.Len(t, seen, 27, "all 27 subcells, each exactly once")
}

func TestStencilWrapsAroundCorner(t *testing.T) {
	// A 4^3 grid: the stencil of the origin corner cell must pull in
	// the opposite faces via periodic wraparound.
	s := newTestSearch(t, 16, 3, 4, []geom.Vec{{0.5, 0.5, 0.5}})
	require.Equal(t, 4, s.grid.cells.Width)

	var cells [stencilSize]int
	s.stencil(&s.wrapped[0], &cells)

	want := map[int]bool{}
	for _, z := range []int{3, 0, 1} {
		for _, y := range []int{3, 0, 1} {
			for _, x := range []int{3, 0, 1} {
				want[s.grid.cells.Idx(x, y, z)] = true
			}
		}
	}
	got := map[int]bool{}
	for _, c := range cells {
		got[c] = true
	}
	assert.Equal(t, want, got)
}

func TestDistAcrossBoundary(t *testing.T) {
	s := newTestSearch(t, 10, 3, 3.4, nil)

	a := geom.Vec{0, 0, 0}
	b := geom.Vec{9, 0, 0}
	assert.InDelta(t, 1.0, s.dist(&a, &b), 1e-12, "9 wraps to -1")

	c := geom.Vec{9.5, 0.5, 9.9}
	assert.InDelta(t, geom.MinImageDist(&a, &c, 10), s.dist(&a, &c), 1e-12)

	d := geom.Vec{2, 1, 0.5}
	assert.InDelta(t, geom.MinImageDist(&a, &d, 10), s.dist(&a, &d), 1e-12)
}

func TestPairsHalfListConvention(t *testing.T) {
	positions := []geom.Vec{
		{1, 1, 1},
		{1.5, 1, 1},
		{2, 1, 1},
	}
	s := newTestSearch(t, 12, 3, 4, positions)

	// Particle 0 owns both of its pairs, particle 2 owns none.
	ps := s.pairs(0, nil)
	ids := []int{}
	for _, p := range ps {
		ids = append(ids, p.id)
	}
	assert.ElementsMatch(t, []int{1, 2}, ids)

	ps = s.pairs(2, nil)
	assert.Empty(t, ps)
}

func TestPairsExcludesCoincidentAndFar(t *testing.T) {
	positions := []geom.Vec{
		{1, 1, 1},
		{1, 1, 1},   // coincident, distance 0
		{7, 7, 7},   // far outside cutoff
		{1.2, 1, 1}, // inside cutoff
	}
	s := newTestSearch(t, 15, 1, 2, positions)

	ps := s.pairs(0, nil)
	require.Len(t, ps, 1)
	assert.Equal(t, 3, ps[0].id)
	assert.InDelta(t, 0.2, ps[0].dist, 1e-12)
}
