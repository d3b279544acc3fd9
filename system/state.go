package system

import (
	"github.com/machism0/nbp/geom"
)

// State is one immutable snapshot of particle positions.
type State struct {
	positions []geom.Vec
}

// NewState copies the given positions into a fresh snapshot.
func NewState(positions []geom.Vec) *State {
	return &State{positions: append([]geom.Vec(nil), positions...)}
}

// Positions returns the particle positions. The slice is shared and
// must not be modified.
func (s *State) Positions() []geom.Vec { return s.positions }

// Len returns the number of particles.
func (s *State) Len() int { return len(s.positions) }

// Displaced returns a new snapshot with the given per-particle moves
// added. The receiving state is left untouched.
func (s *State) Displaced(moves []geom.Vec) *State {
	next := NewState(s.positions)
	for i := range moves {
		next.positions[i].AddSelf(&moves[i])
	}
	return next
}
