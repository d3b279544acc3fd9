package neighbor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/machism0/nbp/geom"
)

// Params describes the periodic box a neighbor list is built for. The
// skin radius must exceed the cutoff radius; the difference is the
// drift budget particles get before a rebuild is required. Workers
// values above 1 parallelize the half-list pass of each rebuild.
type Params struct {
	BoxLength float64
	Cutoff    float64
	Skin      float64
	Workers   int
}

// snapshot bundles the structures produced by one rebuild: the cell
// index, the symmetric cache derived from it, and the positions it was
// built from. A snapshot is immutable once published; Step replaces the
// whole thing in a single pointer swap, so concurrent readers never
// observe a partially rebuilt structure.
type snapshot struct {
	index *cellIndex
	cache *cache
	built []geom.Vec
}

// List finds, for every particle in a periodic cubic box, the other
// particles within the cutoff radius, and caches the resulting
// adjacency for reuse across simulation steps. Rebuilds are amortized:
// the cache stays valid until some particle has drifted through the
// skin margin.
type List struct {
	par  Params
	grid *subcellGrid

	cur *snapshot

	steps    int
	rebuilds int
}

// NewList validates the parameters, sizes the subcell grid, and builds
// the index and cache for the given initial positions.
func NewList(par Params, positions []geom.Vec) (*List, error) {
	if par.Cutoff <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrCutoff, par.Cutoff)
	}
	if par.Skin <= par.Cutoff {
		return nil, fmt.Errorf(
			"%w: skin radius %g, cutoff radius %g",
			ErrSkinMargin, par.Skin, par.Cutoff,
		)
	}

	grid, err := newSubcellGrid(par.BoxLength, par.Skin)
	if err != nil {
		return nil, err
	}
	// The search corrects an axis difference d only once it exceeds two
	// subcell lengths, so a wrapped pair at true separation boxLength-d
	// is seen at distance d until then. Cutoffs beyond
	// boxLength - 2*cellLength (possible only on a 3-cell grid) would
	// let such pairs slip through uncorrected.
	if par.Cutoff > par.BoxLength-2*grid.cellLength {
		return nil, fmt.Errorf(
			"%w: cutoff radius %g with box length %g and subcell length %g",
			ErrCutoffRange, par.Cutoff, par.BoxLength, grid.cellLength,
		)
	}

	l := &List{par: par, grid: grid}
	if err := l.rebuild(positions); err != nil {
		return nil, err
	}
	l.rebuilds = 0
	return l, nil
}

// rebuild constructs a fresh index and cache for the given positions
// and publishes them together with the position snapshot they were
// built from.
func (l *List) rebuild(positions []geom.Vec) error {
	wrapped := make([]geom.Vec, len(positions))
	for i := range positions {
		wrapped[i] = positions[i]
		wrapped[i].Wrap(l.par.BoxLength)
	}

	index, err := buildCellIndex(l.grid, wrapped)
	if err != nil {
		return err
	}

	s := &search{
		boxLength: l.par.BoxLength,
		cutoff:    l.par.Cutoff,
		grid:      l.grid,
		index:     index,
		wrapped:   wrapped,
	}

	built := make([]geom.Vec, len(positions))
	copy(built, positions)

	l.cur = &snapshot{
		index: index,
		cache: buildCache(s, l.par.Workers),
		built: built,
	}
	l.rebuilds++
	return nil
}

// shouldRebuild reports whether any particle has moved further than the
// skin margin since the last rebuild. As long as the maximum Euclidean
// displacement stays within skin - cutoff, no pair can cross into or
// out of cutoff range undetected.
func (l *List) shouldRebuild(positions []geom.Vec) bool {
	if len(positions) == 0 {
		return false
	}

	disp := make([]float64, len(positions))
	for i := range positions {
		disp[i] = geom.Displacement(&positions[i], &l.cur.built[i])
	}
	return floats.Max(disp) > l.par.Skin-l.par.Cutoff
}

// Step advances the scheduler by one simulation step. When accumulated
// drift justifies it, the index and cache are rebuilt for the given
// positions and the step counter resets; otherwise the cache is left
// untouched. Step reports whether a rebuild happened.
func (l *List) Step(positions []geom.Vec) (rebuilt bool, err error) {
	if len(positions) != len(l.cur.built) {
		return false, fmt.Errorf(
			"%w: got %d, want %d",
			ErrPositionCount, len(positions), len(l.cur.built),
		)
	}

	l.steps++
	if !l.shouldRebuild(positions) {
		return false, nil
	}
	if err := l.rebuild(positions); err != nil {
		return false, err
	}
	l.steps = 0
	return true, nil
}

// Neighbors returns the cached neighbor ids and distances of the given
// particle for the position snapshot at the last rebuild. The returned
// slices are shared with the cache and must not be modified.
func (l *List) Neighbors(id int) (ids []int, dists []float64, err error) {
	return l.cur.cache.query(id)
}

// Len returns the number of particles in the current snapshot.
func (l *List) Len() int { return len(l.cur.built) }

// CellsPerRow returns the number of subcells along one box edge.
func (l *List) CellsPerRow() int { return l.grid.cells.Width }

// CellLength returns the edge length of a single subcell.
func (l *List) CellLength() float64 { return l.grid.cellLength }

// Steps returns the number of steps taken since the last rebuild.
func (l *List) Steps() int { return l.steps }

// Rebuilds returns the number of rebuilds triggered by Step since
// construction.
func (l *List) Rebuilds() int { return l.rebuilds }
