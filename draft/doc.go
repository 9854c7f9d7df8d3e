// Package draft holds the 2D pattern a user draws: an ordered sequence of
// geom.Line segments plus the bookkeeping the drafting UI needs (a
// monotonic link-id counter, the pattern bounding box) and the XML file
// format the pattern is persisted as.
//
// What:
//
//   - Draft: ordered []geom.Line plus a link-id counter.
//   - Load/Save: the `<line x1="" y1="" x2="" y2=""/>` XML format
//     (spec.md §6); elements other than <line> are traversed but ignored,
//     attributes other than the four coordinates are ignored on load.
//   - BoundingBox: axis-aligned bounds of every line, used by the
//     rasterizer to size its sweep (spec.md §4.2 step 1).
//   - NextLink/SetLink: the seam-pairing allocator the worker calls when
//     it receives a Link(optional u32) command (spec.md §6).
//
// Why:
//
//   - A Draft is owned exclusively by the worker lane once an OpenFile is
//     delivered (spec.md §5); Load/Save never retain a reference to the
//     Draft they parse/serialize, so that ownership transfer is a pure
//     value handoff.
package draft
