// Package io loads simulation configurations and initial particle
// positions.
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleConfigFile = `[System]

#######################
# Required Parameters #
#######################

# CharLength is the characteristic side length of the periodic box. It
# is rounded up to the nearest multiple of the cutoff radius.
CharLength = 30.0

# Sigma is the largest interaction-range parameter across particle
# types. The cutoff radius is CutoffFactor * Sigma and the skin radius
# is SkinFactor * Sigma.
Sigma = 1.0

# Particles is the number of particles placed uniformly at random in
# the box when no Positions table is given.
Particles = 500

#######################
# Optional Parameters #
#######################

# Positions names a whitespace table holding one particle per row with
# x, y, z coordinates in the first three columns. When set, Particles
# is ignored.
# Positions = path/to/positions.txt

# CutoffFactor and SkinFactor size the interaction cutoff and the
# neighbor-search skin as multiples of Sigma. SkinFactor must be the
# larger of the two; the difference is the drift particles may
# accumulate before the neighbor cache is rebuilt. Defaults are 3 and 4.
# CutoffFactor = 3.0
# SkinFactor = 4.0

# Seed for the random number generator used to place and move
# particles. Default is 1.
# Seed = 1

[Run]

#######################
# Required Parameters #
#######################

# Steps is the number of simulation steps to run.
Steps = 1000

# MaxMove is the largest per-axis random displacement applied to a
# particle in a single step.
MaxMove = 0.05

#######################
# Optional Parameters #
#######################

# Workers is the number of goroutines used to rebuild the neighbor
# cache. 0 selects one per CPU.
# Workers = 0`

// SystemConfig describes the box and its particles.
type SystemConfig struct {
	CharLength   float64
	Sigma        float64
	CutoffFactor float64
	SkinFactor   float64
	Particles    int
	Positions    string
	Seed         int64
}

// RunConfig describes the random-walk driver.
type RunConfig struct {
	Steps   int
	MaxMove float64
	Workers int
}

type Config struct {
	System SystemConfig
	Run    RunConfig
}

// DefaultConfig returns a Config with every optional parameter at its
// default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.System.CutoffFactor = 3
	cfg.System.SkinFactor = 4
	cfg.System.Seed = 1
	return cfg
}

// ReadConfig parses and validates the given configuration file.
func ReadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if err := gcfg.ReadFileInto(cfg, file); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parameter ranges that do not require building a
// system.
func (cfg *Config) Validate() error {
	sys, run := &cfg.System, &cfg.Run
	switch {
	case sys.CharLength <= 0:
		return fmt.Errorf("io: CharLength must be positive, got %g", sys.CharLength)
	case sys.Sigma <= 0:
		return fmt.Errorf("io: Sigma must be positive, got %g", sys.Sigma)
	case sys.CutoffFactor <= 0:
		return fmt.Errorf("io: CutoffFactor must be positive, got %g", sys.CutoffFactor)
	case sys.SkinFactor <= sys.CutoffFactor:
		return fmt.Errorf(
			"io: SkinFactor (%g) must exceed CutoffFactor (%g)",
			sys.SkinFactor, sys.CutoffFactor,
		)
	case sys.Positions == "" && sys.Particles <= 0:
		return fmt.Errorf("io: either Particles or Positions must be set")
	case run.Steps < 0:
		return fmt.Errorf("io: Steps must not be negative, got %d", run.Steps)
	case run.MaxMove < 0:
		return fmt.Errorf("io: MaxMove must not be negative, got %g", run.MaxMove)
	case run.Workers < 0:
		return fmt.Errorf("io: Workers must not be negative, got %d", run.Workers)
	}
	return nil
}
