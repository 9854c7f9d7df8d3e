package raster

import "github.com/katalvlaran/clothmesh/geom"

// Fragment is one rasterized particle: a grid address, its current
// simulated state, and the attributes inherited from whichever draft
// lines cover it (spec.md §3 ClothFragment).
type Fragment struct {
	Index    geom.Index3
	Position geom.Point3
	Velocity geom.Point3

	Pinned bool
	Rigid  bool

	// LinkNumber and LinkVector are both nil unless this fragment is
	// covered by a linked line; they are always set together.
	LinkNumber *uint32
	LinkVector *float64

	// LineID is copied from the covering linked line; meaningless unless
	// LinkNumber != nil. Used to avoid a fragment pairing with another
	// fragment of the very same line (spec.md §4.4).
	LineID uint64
}

// Linked reports whether this fragment carries a seam identity.
func (f Fragment) Linked() bool { return f.LinkNumber != nil }

// Rasterization is the output of Rasterize: the flat fragment array plus
// the two lookup structures downstream stages need.
type Rasterization struct {
	// Fragments is ordinal-indexed: Fragments[i]'s ordinal is i.
	Fragments []Fragment

	// IndexMap maps a grid address to the ordinal of the fragment
	// occupying it.
	IndexMap map[geom.Index3]int

	// SeamMap maps a seam (link) id to every fragment ordinal carrying
	// that LinkNumber, in rasterization order.
	SeamMap map[uint32][]int
}
