// Package system ties the static description of a periodic particle
// box to its evolving position state and the neighbor list maintained
// over it. Energy and force evaluators consume the system through
// Neighbors and drive it through Step.
package system

import (
	"fmt"

	"github.com/machism0/nbp/neighbor"
)

// System owns the current particle state and the neighbor list built
// for it.
type System struct {
	info  *Info
	state *State
	nb    *neighbor.List
}

// New builds a system around the initial particle state, sizing the
// neighbor list from the Info radii. workers above 1 parallelize cache
// rebuilds.
func New(info *Info, initial *State, workers int) (*System, error) {
	if len(info.Charges()) != initial.Len() {
		return nil, fmt.Errorf(
			"%w: %d charges, %d particles",
			ErrChargeCount, len(info.Charges()), initial.Len(),
		)
	}

	nb, err := neighbor.NewList(neighbor.Params{
		BoxLength: info.CharLength(),
		Cutoff:    info.Cutoff(),
		Skin:      info.Skin(),
		Workers:   workers,
	}, initial.Positions())
	if err != nil {
		return nil, err
	}

	return &System{info: info, state: initial, nb: nb}, nil
}

// Info returns the static system description.
func (s *System) Info() *Info { return s.info }

// State returns the current particle state.
func (s *System) State() *State { return s.state }

// Neighbors returns the cached neighbor ids and distances of a particle
// for the snapshot at the last rebuild.
func (s *System) Neighbors(id int) (ids []int, dists []float64, err error) {
	return s.nb.Neighbors(id)
}

// Step adopts the next particle state and advances the neighbor
// scheduler by one simulation step. It reports whether the neighbor
// cache was rebuilt.
func (s *System) Step(next *State) (rebuilt bool, err error) {
	rebuilt, err = s.nb.Step(next.Positions())
	if err != nil {
		return false, err
	}
	s.state = next
	return rebuilt, nil
}

// Rebuilds returns the number of neighbor-cache rebuilds triggered by
// Step since construction.
func (s *System) Rebuilds() int { return s.nb.Rebuilds() }

// NeighborList exposes the underlying neighbor list, e.g. for
// inspecting its grid geometry.
func (s *System) NeighborList() *neighbor.List { return s.nb }
