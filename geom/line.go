package geom

import "math"

// Line is a drafted 2D segment. Two lines sharing a non-nil Link form a
// seam pair; LineID then distinguishes the two lines within that pair
// (spec.md §3 invariant: exactly two lines per link-id, distinct LineIDs).
type Line struct {
	P1, P2 Point2

	// Pinned marks samples under this line as immovable.
	Pinned bool
	// Rigid marks samples under this line as co-planar in height.
	Rigid bool
	// Link is the seam-pairing identifier shared by exactly one other Line.
	Link *uint32
	// LineID is this line's stable identity within its link pair.
	LineID uint64

	// Highlighted marks this line as currently selected in the drafting
	// UI. Selection itself (clicking, box-select, camera) is the
	// out-of-scope interactive drafting UI (spec.md §1); this flag is the
	// one piece of that state the worker-owned Draft must still carry
	// (spec.md §2 component 2's flag list), since Pin and Link (spec.md
	// §6) act on "currently-highlighted lines" after Draft ownership has
	// already passed to the worker lane.
	Highlighted bool
}

// Linked reports whether this line carries a seam-pairing identifier.
func (l Line) Linked() bool { return l.Link != nil }

// normal returns the unit normal to the segment's direction vector.
func (l Line) normal() Point2 {
	dir := l.P2.Sub(l.P1)
	n := Point2{-dir.Y, dir.X}
	length := n.Length()
	if length == 0 {
		return Point2{}
	}
	return n.Scale(1 / length)
}

// Hitbox reports whether point lies within threshold of the infinite strip
// bounded by the segment's two end-caps and its two parallel offset edges,
// i.e. the oriented rectangle of half-width threshold around the segment.
//
// Implemented as the intersection of four half-plane tests using the
// segment's direction and normal vectors (spec.md §4.1).
func (l Line) Hitbox(point Point2, threshold float64) bool {
	dir := l.P2.Sub(l.P1)
	dirLen := dir.Length()
	if dirLen == 0 {
		return point.Sub(l.P1).Length() <= threshold
	}
	unitDir := dir.Scale(1 / dirLen)
	n := l.normal()

	rel := point.Sub(l.P1)
	along := rel.X*unitDir.X + rel.Y*unitDir.Y
	across := rel.X*n.X + rel.Y*n.Y

	if along < -threshold || along > dirLen+threshold {
		return false
	}
	if across < -threshold || across > threshold {
		return false
	}
	return true
}

// InSlice reports whether point.X lies within the segment's x-interval,
// expanded by threshold on each side (spec.md §4.1).
func (l Line) InSlice(point Point2, threshold float64) bool {
	lo, hi := l.P1.X, l.P2.X
	if lo > hi {
		lo, hi = hi, lo
	}
	return point.X >= lo-threshold && point.X <= hi+threshold
}

// IntersectOnX returns the y value at x = point.X of the infinite line
// through P1,P2. Returns (0, false) for a vertical segment (spec.md §4.1).
func (l Line) IntersectOnX(point Point2) (float64, bool) {
	dx := l.P2.X - l.P1.X
	if dx == 0 {
		return 0, false
	}
	t := (point.X - l.P1.X) / dx
	return l.P1.Y + t*(l.P2.Y-l.P1.Y), true
}

// HighEndpoint and LowEndpoint order a line's two endpoints deterministically
// by (x desc, then y desc), matching the canonicalization spec.md §9 pins
// down explicitly (the original source's `p1.y < p1.y` self-comparison typo
// is corrected here to `p1.x < p2.x || (p1.x == p2.x && p1.y < p2.y)`).
func (l Line) HighEndpoint() Point2 {
	hi, _ := l.orderedEndpoints()
	return hi
}

// LowEndpoint returns the endpoint ordered after HighEndpoint; see HighEndpoint.
func (l Line) LowEndpoint() Point2 {
	_, lo := l.orderedEndpoints()
	return lo
}

func (l Line) orderedEndpoints() (hi, lo Point2) {
	p1First := l.P1.X > l.P2.X || (l.P1.X == l.P2.X && l.P1.Y > l.P2.Y)
	if p1First {
		return l.P1, l.P2
	}
	return l.P2, l.P1
}

// LinkVector returns the parametric position of point along this line,
// measured from HighEndpoint toward LowEndpoint: |P_hi - point| / |P_hi - P_lo|
// (spec.md §4.2). Returns 0 for a degenerate (zero-length) line.
func (l Line) LinkVector(point Point2) float64 {
	hi, lo := l.orderedEndpoints()
	total := hi.Sub(lo).Length()
	if total == 0 {
		return 0
	}
	return hi.Sub(point).Length() / total
}

// SameShape reports whether two lines have equal endpoints (within 1e-9)
// and equal Pinned/Rigid flags, ignoring LineID, Link and Highlighted.
func (l Line) SameShape(other Line) bool {
	return pointsEqual(l.P1, other.P1) && pointsEqual(l.P2, other.P2) &&
		l.Pinned == other.Pinned && l.Rigid == other.Rigid
}

func pointsEqual(a, b Point2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
