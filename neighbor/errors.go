package neighbor

import "errors"

var (
	// ErrBoxLength indicates a non-positive box side length.
	ErrBoxLength = errors.New("neighbor: box length must be positive")
	// ErrCutoff indicates a non-positive cutoff radius.
	ErrCutoff = errors.New("neighbor: cutoff radius must be positive")
	// ErrSkinMargin indicates a skin radius that does not exceed the
	// cutoff radius, leaving no drift budget between rebuilds.
	ErrSkinMargin = errors.New("neighbor: skin radius must exceed cutoff radius")
	// ErrSkinTooLarge indicates a skin radius at least as large as the box.
	ErrSkinTooLarge = errors.New("neighbor: skin radius must be smaller than box length")
	// ErrGridTooCoarse indicates a box that cannot be split into at
	// least 3 subcells per row, which the 3x3x3 search stencil requires.
	ErrGridTooCoarse = errors.New("neighbor: box must span at least 3 subcells per row")
	// ErrCutoffRange indicates a cutoff radius so large relative to the
	// subcell grid that the periodic distance correction would miss
	// pairs wrapping across the box boundary.
	ErrCutoffRange = errors.New("neighbor: cutoff radius too large for the subcell grid")
	// ErrOutOfBox indicates a position that still maps outside the
	// subcell grid after periodic wrapping.
	ErrOutOfBox = errors.New("neighbor: wrapped position maps outside the subcell grid")
	// ErrUnknownParticle indicates a neighbor query for a particle id
	// that is not present in the cache.
	ErrUnknownParticle = errors.New("neighbor: particle id not in cache")
	// ErrPositionCount indicates a position slice whose length does not
	// match the particle count the list was built for.
	ErrPositionCount = errors.New("neighbor: position count does not match particle count")
)
