// Command clothmesh loads a draft pattern, rasterizes and builds a Cloth,
// runs the integrator for a fixed number of ticks, and reports the
// resulting fragment/section/quad counts and mean sag height.
//
// It is a headless stand-in for the interactive UI<->worker lanes spec.md
// §5/§6 describe: no windowing, no drafting UI (both explicit
// out-of-scope collaborators), just the core pipeline driven once from
// the command line. Flags follow the stdlib flag package, matching the
// pack's own CLI precedent (no repo in the pack pulls in a third-party
// flag/cobra library).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/clothmesh/cloth"
	"github.com/katalvlaran/clothmesh/draft"
	"github.com/katalvlaran/clothmesh/sim"
)

func main() {
	path := flag.String("draft", "", "path to a draft XML file (required)")
	scale := flag.Float64("scale", 0.1, "lattice-to-world distance factor")
	detail := flag.Float64("detail", 0.25, "rasterizer sampling step in draft space")
	stiffness := flag.Int("stiffness", 1, "neighbor-cube half-edge k")
	gravity := flag.Float64("gravity", 0.001, "per-tick downward velocity increment")
	drag := flag.Float64("drag", 0.98, "per-tick multiplicative velocity damping")
	strength := flag.Float64("strength", 0.02, "default spring restoring-force multiplier")
	seamStrength := flag.Float64("seam-strength", 0.02, "pinned/seam spring restoring-force multiplier")
	ticks := flag.Int("ticks", 1000, "number of integrator ticks to run")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "clothmesh: -draft is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*path, *scale, *detail, *stiffness, *gravity, *drag, *strength, *seamStrength, *ticks); err != nil {
		log.Fatalf("clothmesh: %v", err)
	}
}

func run(path string, scale, detail float64, stiffness int, gravity, drag, strength, seamStrength float64, ticks int) error {
	d, err := draft.Load(path)
	if err != nil {
		return err
	}

	c, err := cloth.Build(d,
		cloth.WithScale(scale),
		cloth.WithDetail(detail),
		cloth.WithStiffness(stiffness),
		cloth.WithGravity(gravity),
		cloth.WithDrag(drag),
		cloth.WithStrength(strength),
		cloth.WithSeamStrength(seamStrength),
	)
	if err != nil {
		return err
	}

	for i := 0; i < ticks; i++ {
		sim.Tick(c)
	}

	var meanHeight float64
	for _, f := range c.Fragments {
		meanHeight += f.Position.Y
	}
	if len(c.Fragments) > 0 {
		meanHeight /= float64(len(c.Fragments))
	}

	fmt.Printf("fragments=%d sections=%d quads=%d mean_height=%.4f\n",
		len(c.Fragments), len(c.Sections), len(c.Quads), meanHeight)
	return nil
}
