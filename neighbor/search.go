package neighbor

import (
	"math"

	"github.com/machism0/nbp/geom"
)

// stencilSize is the number of subcells examined per particle: the
// particle's own subcell plus its 26 neighbors in a 3x3x3 cube.
const stencilSize = 27

// pair is one half-list entry: a neighbor id and the periodic distance
// to it.
type pair struct {
	id   int
	dist float64
}

// search enumerates the neighbors of single particles against a fixed
// snapshot of wrapped positions and its cell index.
type search struct {
	boxLength float64
	cutoff    float64
	grid      *subcellGrid
	index     *cellIndex
	wrapped   []geom.Vec
}

// stencil writes the subcell ids of the 3x3x3 cube around the given
// position into out. Subcell coordinates that leave the grid wrap
// around periodically, independently of the particle-position wrap.
func (s *search) stencil(p *geom.Vec, out *[stencilSize]int) {
	g := s.grid.cells
	cx, cy, cz := s.grid.coords(p)

	n := 0
	for dz := -1; dz <= 1; dz++ {
		z := g.WrapCell(cz + dz)
		for dy := -1; dy <= 1; dy++ {
			y := g.WrapCell(cy + dy)
			for dx := -1; dx <= 1; dx++ {
				out[n] = g.Idx(g.WrapCell(cx+dx), y, z)
				n++
			}
		}
	}
}

// dist returns the periodic distance between two wrapped positions. A
// per-axis separation greater than two subcell lengths can only occur
// across the box boundary, so it is replaced by its wrapped complement.
// The proxy is exact because the grid spans at least 3 subcells per
// row, which newSubcellGrid enforces.
func (s *search) dist(a, b *geom.Vec) float64 {
	lim := 2 * s.grid.cellLength

	var sum float64
	for k := 0; k < 3; k++ {
		d := math.Abs(a[k] - b[k])
		if d > lim {
			d = s.boxLength - d
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}

// pairs appends to buf the half list of particle i: every candidate
// j > i found in the 27-subcell stencil with 0 < dist <= cutoff. Each
// unordered pair is produced exactly once, owned by the smaller id.
func (s *search) pairs(i int, buf []pair) []pair {
	buf = buf[:0]
	p := &s.wrapped[i]

	var cells [stencilSize]int
	s.stencil(p, &cells)

	for _, c := range cells {
		for j := s.index.head[c]; j != endOfChain; j = s.index.next[j] {
			if j <= i {
				continue
			}
			d := s.dist(p, &s.wrapped[j])
			if d > 0 && d <= s.cutoff {
				buf = append(buf, pair{j, d})
			}
		}
	}
	return buf
}
