package neighbor

import (
	"fmt"

	"github.com/machism0/nbp/geom"
)

// endOfChain terminates subcell chains in both head and next.
const endOfChain = -1

// cellIndex maps particles to subcells with a head/next linked
// representation: head holds the most recently inserted particle id of
// each subcell and next chains together particles sharing a subcell.
// Every particle id appears in exactly one chain.
type cellIndex struct {
	head []int
	next []int
}

// buildCellIndex sorts the given wrapped positions into subcell chains.
// Insertion prepends, so the build is O(N) with O(1) work per particle.
func buildCellIndex(sg *subcellGrid, positions []geom.Vec) (*cellIndex, error) {
	ci := &cellIndex{
		head: make([]int, sg.cells.Volume),
		next: make([]int, len(positions)),
	}
	for i := range ci.head {
		ci.head[i] = endOfChain
	}

	for i := range positions {
		cellId, err := sg.subcellIdx(&positions[i])
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		ci.next[i] = ci.head[cellId]
		ci.head[cellId] = i
	}

	return ci, nil
}
