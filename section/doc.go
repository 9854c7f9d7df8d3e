// Package section partitions a rasterized fragment array into disjoint
// pattern pieces ("sections") under 26-neighborhood adjacency on the
// fragments' lattice indices (spec.md §2 component 4, §4.3).
//
// What:
//
//   - Segment: flood-fills every fragment ordinal into exactly one
//     section, using the fixed 26-neighborhood regardless of the
//     stiffness radius used later by the mesh linker (spec.md §9: the
//     segmenter always uses the 1-neighborhood; stiffness controls
//     spring reach, not piece partitioning).
//
// Grounded on gridgraph.GridGraph.ConnectedComponents (gridgraph/components.go),
// whose BFS-over-precomputed-offsets shape this package keeps; the
// differences are domain ones: gridgraph groups 2D cells by equal integer
// value under Conn4/Conn8, while Segment groups 3D lattice-indexed
// fragments under the fixed 26-neighborhood, with no value-equality test
// at all (adjacency alone defines a section) and returns ordinals into the
// caller's flat fragment slice rather than Cell structs, per spec.md §9's
// "ordinals into a single flat vector" ownership rule.
package section
