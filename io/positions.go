package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/machism0/nbp/geom"
)

// ReadPositions reads particle positions from a whitespace table with
// x, y, z coordinates in the first three columns.
func ReadPositions(file string) (positions []geom.Vec, err error) {
	// The table package reports failures (e.g. a missing file) by
	// panicking; convert those into returned errors.
	defer func() {
		if r := recover(); r != nil {
			positions, err = nil, fmt.Errorf("reading %s: %v", file, r)
		}
	}()
	cols := table.TextFile(file).ReadFloat64s([]int{0, 1, 2})

	xs, ys, zs := cols[0], cols[1], cols[2]
	positions = make([]geom.Vec, len(xs))
	for i := range positions {
		positions[i] = geom.Vec{xs[i], ys[i], zs[i]}
	}
	return positions, nil
}
