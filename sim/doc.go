// Package sim implements the integrator: a single forward-Euler tick of
// the mass-spring network a cloth.Cloth holds (spec.md §2 component 7,
// §4.6).
//
// What:
//
//   - Tick: snapshots every fragment's position/velocity, then for each
//     fragment applies gravity, per-neighbor spring restoring force
//     (rest length equal to lattice-index distance, scaled by
//     cloth.Cloth.Scale), the seam-partner force override, a rigid-plane
//     pull-to-mean term, multiplicative velocity damping, and finally
//     position integration (skipped for pinned fragments).
//
// Why a snapshot buffer rather than in-place updates: spec.md §4.6 step 1
// requires every fragment's force this tick to be computed from the same
// read-only state, so that fragment order never changes the result (the
// teacher's BFS/DFS packages make an analogous "visited snapshot per
// traversal" choice to keep iteration order-independent; here the
// snapshot is a double-buffered position/velocity copy instead of a
// visited-set, since every fragment updates every tick rather than being
// visited once).
package sim
