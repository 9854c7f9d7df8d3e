// Package progress is the cooperative progress-emission and
// cancellation-polling contract shared by the rasterizer, segmenter, and
// neighborhood linker (spec.md §2 component 8, §5, §6).
//
// What:
//
//   - Reporter bundles a context.Context (polled for cancellation at each
//     outer loop iteration) and an OnProgress hook (called with a value in
//     [0,1], monotonically non-decreasing within one render).
//   - Emit clamps and forwards to OnProgress; Cancelled reports whether the
//     context has been cancelled.
//
// Why a separate leaf package:
//
//   - raster, section, and mesh all need this contract, and worker (which
//     owns the UI<->worker channels spec.md §5/§6 describe) orchestrates
//     all three. Putting the contract in worker would make worker and
//     raster/section/mesh import each other; this package breaks that
//     cycle the same way gridgraph's and bfs's shared primitives are kept
//     independent of any one algorithm package.
package progress
