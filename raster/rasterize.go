package raster

import (
	"sort"

	"github.com/katalvlaran/clothmesh/draft"
	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/progress"
)

// BBoxPad is the margin added to every side of a draft's bounding box
// before sweeping columns (spec.md §4.2 step 1: "expanded by 1 on each
// side"). Named per SPEC_FULL.md §4.3 so tests can assert against it
// instead of a magic literal.
const BBoxPad = 1.0

// hitboxMultiplier scales the sampling step into the attribute-accumulation
// hitbox threshold (spec.md §4.2 step 3b: "L.hitbox(check, d·1.5)").
const hitboxMultiplier = 1.5

// startHeight is the initial world-space height every fresh fragment is
// given before gravity and springs act on it (spec.md §4.2 step 3b:
// "position = (x_step·s, 1, y_step·s)").
const startHeight = 1.0

// Rasterize sweeps d's bounding box (padded by BBoxPad) on an integer grid
// spaced detail apart in draft space, emitting one Fragment per sample that
// falls strictly inside the pattern under the standard even-odd rule.
// scale converts a lattice step into a world-space distance.
//
// pr.Emit is called with 0 at the start, 1 on success, and proportionally
// in between as columns are swept; the caller (cloth.Build) is responsible for
// rescaling this into its overall render-progress budget (spec.md §4.2
// step 4; see progress.Reporter.Sub).
//
// Returns progress.ErrCancelled, leaving no partial Rasterization visible
// to the caller, if pr's context is cancelled before the sweep completes.
func Rasterize(d *draft.Draft, scale, detail float64, pr progress.Reporter) (*Rasterization, error) {
	pr.Emit(0)

	min, max, err := d.BoundingBox()
	if err != nil {
		return nil, err
	}
	min.X -= BBoxPad
	min.Y -= BBoxPad
	max.X += BBoxPad
	max.Y += BBoxPad

	xSteps := int((max.X-min.X)/detail) + 1
	ySteps := int((max.Y-min.Y)/detail) + 1

	out := &Rasterization{
		IndexMap: make(map[geom.Index3]int),
		SeamMap:  make(map[uint32][]int),
	}

	for xStep := 0; xStep <= xSteps; xStep++ {
		if pr.Cancelled() {
			return nil, progress.ErrCancelled
		}
		pr.Emit(float64(xStep) / float64(xSteps+1))

		x := min.X + float64(xStep)*detail
		flipPoints := columnFlipPoints(d, x)

		for yStep := 0; yStep <= ySteps; yStep++ {
			y := min.Y + float64(yStep)*detail
			check := geom.Point2{X: x, Y: y}

			if !isInterior(flipPoints, y) {
				continue
			}

			frag := Fragment{
				Index:    geom.Index3{Ix: xStep, Iy: 0, Iz: yStep},
				Position: geom.Point3{X: float64(xStep) * scale, Y: startHeight, Z: float64(yStep) * scale},
			}
			accumulateAttributes(&frag, d, check, detail*hitboxMultiplier)

			ordinal := len(out.Fragments)
			out.Fragments = append(out.Fragments, frag)
			out.IndexMap[frag.Index] = ordinal
			if frag.LinkNumber != nil {
				out.SeamMap[*frag.LinkNumber] = append(out.SeamMap[*frag.LinkNumber], ordinal)
			}
		}
	}

	pr.Emit(1)
	return out, nil
}

// columnFlipPoints collects the y-intersections of every line whose
// x-interval (InSlice, threshold 0) covers x (spec.md §4.2 step 3a).
func columnFlipPoints(d *draft.Draft, x float64) []float64 {
	check := geom.Point2{X: x}
	flips := make([]float64, 0, len(d.Lines))
	for _, l := range d.Lines {
		if !l.InSlice(check, 0) {
			continue
		}
		if y, ok := l.IntersectOnX(check); ok {
			flips = append(flips, y)
		}
	}
	return flips
}

// isInterior applies the even-odd parity rule: y is interior iff the
// count of flip points strictly greater than y is odd (spec.md §4.2 step
// 3b).
func isInterior(flipPoints []float64, y float64) bool {
	count := 0
	for _, fp := range flipPoints {
		if fp > y {
			count++
		}
	}
	return count%2 == 1
}

// accumulateAttributes sets frag's pinned/rigid/link attributes from every
// line whose oriented hitbox covers check, OR-ing pinned and rigid across
// covering lines (spec.md §9: "Implementations SHOULD use |= to match the
// pinned treatment") and last-writer-wins for the link identity.
func accumulateAttributes(frag *Fragment, d *draft.Draft, check geom.Point2, threshold float64) {
	for _, l := range d.Lines {
		if !l.Hitbox(check, threshold) {
			continue
		}
		frag.Pinned = frag.Pinned || l.Pinned
		frag.Rigid = frag.Rigid || l.Rigid
		if l.Linked() {
			link := *l.Link
			lv := l.LinkVector(check)
			frag.LinkNumber = &link
			frag.LinkVector = &lv
			frag.LineID = l.LineID
		}
	}
}

// SortedSeamIDs returns out's seam ids in ascending order, a convenience
// for deterministic iteration in tests and the mesh linker.
func (out *Rasterization) SortedSeamIDs() []uint32 {
	ids := make([]uint32, 0, len(out.SeamMap))
	for id := range out.SeamMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
