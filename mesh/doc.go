// Package mesh fills each rasterized fragment's neighbor ordinals within a
// stiffness-radius lattice cube, glues seam-paired fragments together with
// one extra neighbor edge apiece, and derives the quadrilateral face list
// used for wireframe rendering (spec.md §2 components 5-6, §4.4-§4.5).
//
// Neighbor lists, like everything downstream of the rasterizer, are
// ordinal-indexed slices into the caller's flat fragment array — never
// pointers or Index3-keyed maps — per spec.md §9's ownership rule.
package mesh
