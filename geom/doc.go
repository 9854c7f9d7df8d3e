// Package geom provides the 2D/3D geometric primitives shared by the
// draft, raster, section, mesh, and sim packages.
//
// What:
//
//   - Point2, Point3: plain real-valued coordinates with arithmetic.
//   - Index3: an integer lattice coordinate (the grid address a Point3
//     occupies once rasterized), with component-wise equality and a
//     Euclidean-length helper used for spring rest lengths.
//   - Line: a drafted 2D segment carrying the pin/rigid/link attributes
//     described in the pattern format, plus the geometric queries the
//     rasterizer needs (Hitbox, InSlice, IntersectOnX).
//
// Why:
//
//   - Keeping these as plain records (no polymorphism, no pointer graphs)
//     matches the rest of the pipeline's ordinal/flat-array discipline:
//     a Line is an immutable snapshot once a Draft is rasterized, and a
//     Point3/Index3 pair is copied by value into fragments.
package geom
