package geom

import (
	"math"
)

// Vec is a position or displacement in a 3D box.
type Vec [3]float64

// Wrap maps every coordinate of v into [0, width) under periodic
// boundary conditions.
func (v *Vec) Wrap(width float64) {
	for i := 0; i < 3; i++ {
		v[i] -= math.Floor(v[i]/width) * width
	}
}

// AddSelf adds u to v in place.
func (v *Vec) AddSelf(u *Vec) {
	for i := 0; i < 3; i++ {
		v[i] += u[i]
	}
}

// Norm returns the Euclidean length of v.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Displacement returns the Euclidean distance between two positions
// without any periodic correction.
func Displacement(p1, p2 *Vec) float64 {
	d := Vec{p1[0] - p2[0], p1[1] - p2[1], p1[2] - p2[2]}
	return d.Norm()
}

// WrapDist returns the minimum-image separation of two coordinates
// within a periodic interval of the given width. Both coordinates must
// already lie in [0, width).
func WrapDist(x1, x2, width float64) float64 {
	var low, high float64

	if x1 < x2 {
		low, high = x1, x2
	} else {
		low, high = x2, x1
	}

	d1 := high - low
	d2 := low + width - high

	if d1 > d2 {
		return d2
	}
	return d1
}

// MinImageDist returns the minimum-image Euclidean distance between two
// wrapped positions in a periodic cube of the given width.
func MinImageDist(p1, p2 *Vec, width float64) float64 {
	dx := WrapDist(p1[0], p2[0], width)
	dy := WrapDist(p1[1], p2[1], width)
	dz := WrapDist(p1[2], p2[2], width)

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
