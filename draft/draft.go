package draft

import (
	"errors"
	"math"

	"github.com/katalvlaran/clothmesh/geom"
)

// Sentinel errors for draft operations.
var (
	// ErrEmptyDraft is returned by BoundingBox on a Draft with no lines.
	ErrEmptyDraft = errors.New("draft: no lines to bound")
)

// Draft is an ordered pattern of line segments plus the monotonic link-id
// counter used when the UI assigns a new seam pairing.
type Draft struct {
	Lines []geom.Line

	nextLink uint32
}

// New returns an empty Draft.
func New() *Draft {
	return &Draft{}
}

// NextLink returns a fresh, never-before-issued link id and advances the
// counter. Link ids start at 1 so the zero value can keep meaning
// "unlinked" when stored as a non-pointer field elsewhere.
func (d *Draft) NextLink() uint32 {
	d.nextLink++
	return d.nextLink
}

// SetLink assigns link to every line in d.Lines whose index is in ids. A
// nil link clears the seam pairing on those lines (spec.md §6 Link(optional
// u32)). An empty ids slice is a documented no-op (spec.md §7(d)).
func (d *Draft) SetLink(ids []int, link *uint32) {
	for _, i := range ids {
		if i < 0 || i >= len(d.Lines) {
			continue
		}
		d.Lines[i].Link = link
	}
}

// BoundingBox returns the axis-aligned box spanning every line's endpoints.
// Returns ErrEmptyDraft if the draft has no lines.
func (d *Draft) BoundingBox() (min, max geom.Point2, err error) {
	if len(d.Lines) == 0 {
		return geom.Point2{}, geom.Point2{}, ErrEmptyDraft
	}
	min = geom.Point2{X: math.Inf(1), Y: math.Inf(1)}
	max = geom.Point2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, l := range d.Lines {
		for _, p := range [2]geom.Point2{l.P1, l.P2} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max, nil
}
