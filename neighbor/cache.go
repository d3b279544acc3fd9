package neighbor

import (
	"fmt"
	"sync"
)

// cache is the symmetric neighbor adjacency for one position snapshot:
// parallel id and distance sequences per particle, pre-sized to the
// particle count since the id range is fixed at rebuild time. A
// distance is stored once and shared verbatim by both endpoints.
type cache struct {
	ids   [][]int
	dists [][]float64
}

func newCache(n int) *cache {
	return &cache{
		ids:   make([][]int, n),
		dists: make([][]float64, n),
	}
}

// add records j as a neighbor of i and i as a neighbor of j, storing
// the identical distance on both sides.
func (c *cache) add(i, j int, d float64) {
	c.ids[i] = append(c.ids[i], j)
	c.dists[i] = append(c.dists[i], d)
	c.ids[j] = append(c.ids[j], i)
	c.dists[j] = append(c.dists[j], d)
}

// query returns the cached neighbor ids and distances of a particle.
// Ids outside the indexed range are an error, not an empty result.
func (c *cache) query(id int) ([]int, []float64, error) {
	if id < 0 || id >= len(c.ids) {
		return nil, nil, fmt.Errorf(
			"%w: id %d with %d particles indexed",
			ErrUnknownParticle, id, len(c.ids),
		)
	}
	return c.ids[id], c.dists[id], nil
}

// buildCache runs one full half-list pass over all particles and
// symmetrizes the result. With more than one worker the half lists are
// computed for interleaved id ranges in parallel; each worker writes
// only its own slots, and symmetrization stays serial in ascending id
// order, so the result is identical to the single-threaded pass.
func buildCache(s *search, workers int) *cache {
	n := len(s.wrapped)
	c := newCache(n)

	if workers <= 1 {
		buf := make([]pair, 0, 64)
		for i := 0; i < n; i++ {
			buf = s.pairs(i, buf)
			for _, p := range buf {
				c.add(i, p.id, p.dist)
			}
		}
		return c
	}

	halves := make([][]pair, n)
	wg := &sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += workers {
				halves[i] = s.pairs(i, nil)
			}
		}(w)
	}
	wg.Wait()

	for i, ps := range halves {
		for _, p := range ps {
			c.add(i, p.id, p.dist)
		}
	}
	return c
}
