package section

import (
	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/progress"
	"github.com/katalvlaran/clothmesh/raster"
)

// Segment partitions every ordinal of fragments into exactly one section,
// flood-filling the 26-neighborhood of each fragment's lattice index. The
// returned sections are pairwise disjoint and their union is every ordinal
// in [0,len(fragments)) (spec.md §3 invariants, §8 property 2).
//
// pr.Emit reports this phase's own progress in [0,1]; the caller rescales
// it into its overall render budget (see progress.Reporter.Sub). Returns
// progress.ErrCancelled if pr's context is cancelled mid-flood-fill.
func Segment(fragments []raster.Fragment, indexMap map[geom.Index3]int, pr progress.Reporter) ([][]int, error) {
	pr.Emit(0)

	visited := make([]bool, len(fragments))
	var sections [][]int
	offsets := geom.Neighbors26()

	for seed := 0; seed < len(fragments); seed++ {
		if visited[seed] {
			continue
		}
		if pr.Cancelled() {
			return nil, progress.ErrCancelled
		}

		section := []int{seed}
		visited[seed] = true
		for i := 0; i < len(section); i++ {
			if pr.Cancelled() {
				return nil, progress.ErrCancelled
			}
			cur := section[i]
			curIndex := fragments[cur].Index
			for _, off := range offsets {
				neighborIndex := curIndex.Add(off)
				ord, ok := indexMap[neighborIndex]
				if !ok || visited[ord] {
					continue
				}
				visited[ord] = true
				section = append(section, ord)
			}
		}
		sections = append(sections, section)
		pr.Emit(float64(seed+1) / float64(len(fragments)))
	}

	pr.Emit(1)
	return sections, nil
}

// OrdinalToSection builds the ordinal -> section-index lookup spec.md §9
// recommends precomputing, rather than the source's linear scan ("The
// integrator reads 'section of F' by linear scan... Implementations
// SHOULD precompute ordinal -> section_index as an array for O(1)
// lookup").
func OrdinalToSection(sections [][]int) []int {
	total := 0
	for _, s := range sections {
		total += len(s)
	}
	lookup := make([]int, total)
	for sIdx, s := range sections {
		for _, ord := range s {
			lookup[ord] = sIdx
		}
	}
	return lookup
}
