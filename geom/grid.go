package geom

// Grid provides an interface for reasoning over a 1D slice as if it
// were a cubic 3D grid with periodic boundary conditions.
type Grid struct {
	Width, Area, Volume int
}

// NewGrid returns a new Grid with the given number of cells per side.
func NewGrid(width int) *Grid {
	return &Grid{
		Width:  width,
		Area:   width * width,
		Volume: width * width * width,
	}
}

// Idx returns the grid index corresponding to a set of cell coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Width + z*g.Area
}

// IdxCheck returns an index and true if the given coordinates are valid
// and false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}
	return g.Idx(x, y, z), true
}

// BoundsCheck returns true if the given coordinates are within the Grid
// and false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 &&
		x < g.Width && y < g.Width && z < g.Width
}

// Coords returns the x, y, z cell coordinates of a point from its grid
// index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Width
	y = (idx % g.Area) / g.Width
	z = idx / g.Area
	return x, y, z
}

// WrapCell maps an out-of-range cell coordinate back into [0, Width)
// under periodic boundary conditions.
func (g *Grid) WrapCell(c int) int {
	return pMod(c, g.Width)
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
