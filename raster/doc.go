// Package raster converts a draft.Draft into a flat sequence of sample
// Fragments using an even-odd parity fill, the grid-index -> ordinal map
// those fragments occupy, and the seam-id -> ordinals map used by the
// neighborhood linker (spec.md §2 component 3, §4.2).
//
// What:
//
//   - Fragment: one rasterized particle (index, position, velocity,
//     pinned/rigid/link attributes).
//   - Rasterize: sweeps the draft's bounding box column by column, testing
//     each candidate sample for interior membership via a vertical-ray
//     even-odd parity count, and accumulating the attributes of every
//     line whose oriented hitbox covers the sample.
//
// Why even-odd via IntersectOnX + InSlice rather than a polygon-fill
// library: the draft is an arbitrary, possibly multiply-connected set of
// line segments (not necessarily one closed polygon per piece), so the
// parity rule has to run per-column against every line's half-infinite
// vertical-ray intersection rather than against a single assembled
// polygon boundary. Grounded on gridgraph.From2D's column/row sweep over
// a rectangular index space (gridgraph/gridgraph.go), generalized from an
// already-labeled integer grid to parity-derived interior membership.
package raster
