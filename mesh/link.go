package mesh

import (
	"math"

	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/progress"
	"github.com/katalvlaran/clothmesh/raster"
)

// Link fills every fragment's neighbor ordinal list: the stiffness-radius
// lattice cube around its own index (spec.md §4.4; the cube includes the
// zero offset, so a fragment's own ordinal is always present in its own
// list — the integrator, not the linker, is responsible for excluding
// self), plus one extra seam edge for fragments carrying a link_number.
//
// The returned slice is ordinal-indexed: neighbors[i] is fragment i's
// neighbor list.
//
// Seam-partner selection: among the set of ordinals sharing F's
// link_number with a *different* line_id (needed so two samples of the
// same drafted line never pair with each other — spec.md §3's invariant
// names "a different line_id" as part of what a correct seam partner is,
// even though §4.4's prose states the candidate set only as "ordinal !=
// F's ordinal"; omitting the line_id filter would let a same-line
// neighbor with a nearly-identical link_vector win every time, which
// cannot satisfy that invariant), pick the ordinal minimizing
// |partner.link_vector - F.link_vector|, breaking ties by the smallest
// ordinal (spec.md §9, required for S4 seam symmetry).
func Link(fragments []raster.Fragment, indexMap map[geom.Index3]int, seamMap map[uint32][]int, stiffness int, pr progress.Reporter) ([][]int, error) {
	pr.Emit(0)

	offsets := geom.Cube(stiffness)
	neighbors := make([][]int, len(fragments))

	for f := range fragments {
		if pr.Cancelled() {
			return nil, progress.ErrCancelled
		}

		frag := fragments[f]
		list := make([]int, 0, len(offsets)+1)
		for _, off := range offsets {
			if ord, ok := indexMap[frag.Index.Add(off)]; ok {
				list = append(list, ord)
			}
		}

		if frag.Linked() {
			if partner, ok := seamPartner(fragments, seamMap[*frag.LinkNumber], f, frag); ok {
				list = append(list, partner)
			}
		}

		neighbors[f] = list
		pr.Emit(float64(f+1) / float64(len(fragments)))
	}

	pr.Emit(1)
	return neighbors, nil
}

// seamPartner picks F's seam partner from candidates, the ordinals sharing
// F's link_number, per the rule documented on Link.
func seamPartner(fragments []raster.Fragment, candidates []int, f int, frag raster.Fragment) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if c == f {
			continue
		}
		cand := fragments[c]
		if cand.LineID == frag.LineID {
			continue
		}
		dist := math.Abs(*cand.LinkVector - *frag.LinkVector)
		if dist < bestDist || (dist == bestDist && c < best) {
			bestDist = dist
			best = c
		}
	}
	return best, best >= 0
}
