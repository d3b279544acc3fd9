package system

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCharLength indicates a non-positive characteristic length.
	ErrCharLength = errors.New("system: characteristic length must be positive")
	// ErrSigma indicates a missing or non-positive interaction range.
	ErrSigma = errors.New("system: at least one positive interaction range is required")
	// ErrRadiusFactors indicates cutoff/skin factors that leave no
	// drift margin between rebuilds.
	ErrRadiusFactors = errors.New("system: skin factor must exceed cutoff factor")
	// ErrCutoffTooLarge indicates a cutoff radius beyond half the box,
	// where the minimum-image convention breaks down.
	ErrCutoffTooLarge = errors.New("system: cutoff radius must not exceed half the characteristic length")
	// ErrChargeCount indicates a charge slice that does not provide one
	// charge per particle.
	ErrChargeCount = errors.New("system: one charge per particle required")
)

// DefaultCutoffFactor and DefaultSkinFactor size the cutoff and skin
// radii as multiples of the largest interaction range.
const (
	DefaultCutoffFactor = 3.0
	DefaultSkinFactor   = 4.0
)

// Info holds the static description of a simulation box: its geometry,
// the interaction ranges of the particle types, and the per-particle
// charges. The characteristic length is rounded up to the nearest
// multiple of the cutoff radius.
type Info struct {
	charLength float64
	sigmas     []float64
	charges    []float64
	cutoff     float64
	skin       float64
}

// NewInfo validates and freezes the static system parameters. The
// cutoff radius is cutoffFactor times the largest interaction range
// and the skin radius is skinFactor times it; skinFactor must be the
// larger of the two so that the neighbor cache has a drift budget.
func NewInfo(
	charLength float64, sigmas, charges []float64,
	cutoffFactor, skinFactor float64,
) (*Info, error) {
	if charLength <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrCharLength, charLength)
	}
	if len(sigmas) == 0 {
		return nil, ErrSigma
	}
	worst := 0.0
	for _, s := range sigmas {
		if s <= 0 {
			return nil, fmt.Errorf("%w: got %g", ErrSigma, s)
		}
		if s > worst {
			worst = s
		}
	}
	if cutoffFactor <= 0 || skinFactor <= cutoffFactor {
		return nil, fmt.Errorf(
			"%w: cutoff factor %g, skin factor %g",
			ErrRadiusFactors, cutoffFactor, skinFactor,
		)
	}

	cutoff := cutoffFactor * worst
	length := math.Ceil(charLength/cutoff) * cutoff
	if cutoff > length/2 {
		return nil, fmt.Errorf(
			"%w: cutoff radius %g, characteristic length %g",
			ErrCutoffTooLarge, cutoff, length,
		)
	}

	info := &Info{
		charLength: length,
		sigmas:     append([]float64(nil), sigmas...),
		charges:    append([]float64(nil), charges...),
		cutoff:     cutoff,
		skin:       skinFactor * worst,
	}
	return info, nil
}

// CharLength returns the side length of the periodic box.
func (info *Info) CharLength() float64 { return info.charLength }

// BoxDim returns the box dimensions, one entry per axis.
func (info *Info) BoxDim() [3]float64 {
	return [3]float64{info.charLength, info.charLength, info.charLength}
}

// Volume returns the volume of the box.
func (info *Info) Volume() float64 {
	return info.charLength * info.charLength * info.charLength
}

// Cutoff returns the interaction cutoff radius.
func (info *Info) Cutoff() float64 { return info.cutoff }

// Skin returns the neighbor-search skin radius.
func (info *Info) Skin() float64 { return info.skin }

// WorstSigma returns the largest interaction range across particle
// types.
func (info *Info) WorstSigma() float64 {
	worst := 0.0
	for _, s := range info.sigmas {
		if s > worst {
			worst = s
		}
	}
	return worst
}

// Charges returns the per-particle charges. The slice is shared and
// must not be modified.
func (info *Info) Charges() []float64 { return info.charges }
