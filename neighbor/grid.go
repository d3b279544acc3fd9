package neighbor

import (
	"fmt"
	"math"

	"github.com/machism0/nbp/geom"
)

// subcellGrid partitions a periodic cubic box into m^3 cubic subcells
// whose edge length does not exceed the skin radius. Its parameters are
// computed once at construction and never change.
type subcellGrid struct {
	cells      *geom.Grid
	cellLength float64
}

// newSubcellGrid chooses the smallest number of subcells per row whose
// cells are no wider than the skin radius. Grids narrower than 3
// subcells per row cannot cover a cutoff sphere with a 3x3x3 stencil
// and are rejected.
func newSubcellGrid(boxLength, skinRadius float64) (*subcellGrid, error) {
	if boxLength <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBoxLength, boxLength)
	}
	if skinRadius >= boxLength {
		return nil, fmt.Errorf(
			"%w: skin radius %g, box length %g",
			ErrSkinTooLarge, skinRadius, boxLength,
		)
	}

	perRow := 1
	for boxLength/float64(perRow) > skinRadius {
		perRow++
	}

	if perRow < 3 {
		return nil, fmt.Errorf(
			"%w: box length %g and skin radius %g give only %d",
			ErrGridTooCoarse, boxLength, skinRadius, perRow,
		)
	}

	return &subcellGrid{
		cells:      geom.NewGrid(perRow),
		cellLength: boxLength / float64(perRow),
	}, nil
}

// coords returns the per-axis subcell coordinates of a wrapped
// position. The coordinates are not bounds checked.
func (sg *subcellGrid) coords(p *geom.Vec) (cx, cy, cz int) {
	cx = int(math.Floor(p[0] / sg.cellLength))
	cy = int(math.Floor(p[1] / sg.cellLength))
	cz = int(math.Floor(p[2] / sg.cellLength))
	return cx, cy, cz
}

// subcellIdx maps a wrapped position to its linear subcell id. A
// position outside [0, boxLength) on any axis indicates a wrapping bug
// upstream and is reported rather than dropped.
func (sg *subcellGrid) subcellIdx(p *geom.Vec) (int, error) {
	cx, cy, cz := sg.coords(p)
	idx, ok := sg.cells.IdxCheck(cx, cy, cz)
	if !ok {
		return -1, fmt.Errorf(
			"%w: position %v maps to subcell (%d, %d, %d) of a %d^3 grid",
			ErrOutOfBox, *p, cx, cy, cz, sg.cells.Width,
		)
	}
	return idx, nil
}
