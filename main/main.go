package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"

	"gonum.org/v1/gonum/stat"

	"github.com/machism0/nbp/geom"
	"github.com/machism0/nbp/io"
	"github.com/machism0/nbp/system"
)

func main() {
	var exampleConfig bool
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Print an example configuration file and exit.",
	)
	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleConfigFile)
		return
	}
	if flag.NArg() != 1 {
		log.Fatalf("Usage: %s [flags] config_file", os.Args[0])
	}

	cfg, err := io.ReadConfig(flag.Arg(0))
	if err != nil {
		log.Fatal(err.Error())
	}

	gen := rand.New(rand.NewSource(cfg.System.Seed))
	positions, err := initialPositions(cfg, gen)
	if err != nil {
		log.Fatal(err.Error())
	}

	sigmas := []float64{cfg.System.Sigma}
	info, err := system.NewInfo(
		cfg.System.CharLength, sigmas, alternatingCharges(len(positions)),
		cfg.System.CutoffFactor, cfg.System.SkinFactor,
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	workers := cfg.Run.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	sys, err := system.New(info, system.NewState(positions), workers)
	if err != nil {
		log.Fatal(err.Error())
	}
	nb := sys.NeighborList()
	log.Printf(
		"Box length: %g, cutoff: %g, skin: %g, particles: %d, workers: %d",
		info.CharLength(), info.Cutoff(), info.Skin(), nb.Len(), workers,
	)
	log.Printf(
		"Subcell grid: %d^3 cells of length %g",
		nb.CellsPerRow(), nb.CellLength(),
	)

	if err := run(cfg, sys, gen); err != nil {
		log.Fatal(err.Error())
	}
	report(sys)
}

// initialPositions reads the positions table when one is configured and
// otherwise places particles uniformly at random in the box.
func initialPositions(cfg *io.Config, gen *rand.Rand) ([]geom.Vec, error) {
	if cfg.System.Positions != "" {
		return io.ReadPositions(cfg.System.Positions)
	}

	positions := make([]geom.Vec, cfg.System.Particles)
	for i := range positions {
		for k := 0; k < 3; k++ {
			positions[i][k] = gen.Float64() * cfg.System.CharLength
		}
	}
	return positions, nil
}

// alternatingCharges assigns +1/-1 charges so the box stays neutral.
func alternatingCharges(n int) []float64 {
	charges := make([]float64, n)
	for i := range charges {
		if i%2 == 0 {
			charges[i] = 1
		} else {
			charges[i] = -1
		}
	}
	return charges
}

// run drives the system through a random displacement walk, advancing
// the neighbor scheduler once per step.
func run(cfg *io.Config, sys *system.System, gen *rand.Rand) error {
	moves := make([]geom.Vec, sys.State().Len())
	for step := 0; step < cfg.Run.Steps; step++ {
		for i := range moves {
			for k := 0; k < 3; k++ {
				moves[i][k] = (2*gen.Float64() - 1) * cfg.Run.MaxMove
			}
		}

		rebuilt, err := sys.Step(sys.State().Displaced(moves))
		if err != nil {
			return err
		}
		if rebuilt {
			log.Printf(
				"Step %d: rebuilt neighbor cache (rebuild %d)",
				step, sys.Rebuilds(),
			)
		}
	}
	return nil
}

// report logs neighbor-count statistics for the final snapshot.
func report(sys *system.System) {
	counts := make([]float64, sys.State().Len())
	for i := range counts {
		ids, _, err := sys.Neighbors(i)
		if err != nil {
			log.Fatal(err.Error())
		}
		counts[i] = float64(len(ids))
	}

	if len(counts) == 0 {
		return
	}
	log.Printf(
		"Neighbors per particle: mean %.2f, stddev %.2f",
		stat.Mean(counts, nil), stat.StdDev(counts, nil),
	)
}
