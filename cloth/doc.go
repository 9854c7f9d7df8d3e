// Package cloth owns the Cloth aggregate: the rasterized fragment array,
// per-fragment neighbor and section membership, the quad face list, and
// the mutable tuning scalars the integrator reads each tick (spec.md §3
// Cloth, ClothSegment).
//
// Build wires the rasterizer, segmenter, and linker together into one
// render pass, rescaling each sub-phase's progress into the caller's
// overall budget per spec.md §4.2 step 4. This mirrors how
// builder.BuilderOption compositions in the teacher assemble a graph from
// independent generator steps, generalized here to a three-stage pipeline
// instead of one generator function.
package cloth
