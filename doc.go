// Package clothmesh rasterizes a 2D draft pattern of line segments into a
// 3D mass-spring particle network and simulates that network under
// gravity and internal spring forces to produce a garment-like drape.
//
// What clothmesh is:
//
//	A pattern-to-mesh rasterizer plus a verlet-style mass-spring solver
//	operating on the resulting irregular particle graph:
//
//	  - Fill rasterization: even-odd parity sampling of closed (possibly
//	    multiply-connected) line-segment regions into a grid of particles.
//	  - Neighborhood graph construction: stiffness-radius neighbor fill
//	    plus seam edges gluing matching linked lines together.
//	  - Connected-component segmentation: disjoint pattern pieces so
//	    spring forces stay local except across seams.
//	  - Quad extraction: wireframe face loops for rendering.
//	  - A single-pass forward-Euler integrator: gravity, spring restoring
//	    force, damping, rigid-plane averaging, pin immovability, seam
//	    crossover strength.
//
// Why this shape:
//
//   - Deterministic, ordinal-indexed slices instead of pointer graphs —
//     a fragment's neighbors are indices into one flat array, never
//     pointers, so a per-tick snapshot of the whole array is a cheap copy
//     with no aliasing hazards.
//   - Cooperative cancellation and progress reporting, not preemption —
//     the rasterizer, segmenter, and linker poll a shared context at
//     their own loop boundaries rather than being interrupted mid-step.
//
// Everything is organized under leaf packages, each owning one stage of
// the pipeline:
//
//	geom/    — Point2, Point3, Index3, Line: shared geometric primitives.
//	draft/   — the ordered Line pattern, its XML file format, and the
//	           seam-pairing link-id allocator.
//	progress/ — the Reporter cancellation/progress contract raster,
//	           section, and mesh all poll.
//	raster/  — Draft -> []Fragment, even-odd parity fill.
//	section/ — 26-connected flood fill into disjoint pattern pieces.
//	mesh/    — stiffness-cube neighbor fill, seam-partner pairing, quad
//	           face extraction.
//	cloth/   — the Cloth aggregate and the Build pipeline wiring raster,
//	           section, and mesh together.
//	sim/     — Tick: one forward-Euler integrator step over a Cloth.
//	worker/  — the UI<->worker lane message protocol and the worker's
//	           message pump.
//
// See cmd/clothmesh for a headless driver that loads a draft, builds a
// Cloth, runs the integrator for a fixed number of ticks, and reports the
// resulting shape.
//
//	go get github.com/katalvlaran/clothmesh
package clothmesh
