package mesh

import (
	"sort"

	"github.com/katalvlaran/clothmesh/raster"
)

// Quad is a wireframe face: four fragment ordinals forming a unit lattice
// cell in (ix,iz) (spec.md §3 Cloth.quads, §4.5).
type Quad [4]int

// ExtractQuads derives the quadrilateral face list from fragments and their
// neighbor lists (as built by Link).
//
// For each fragment F and each of the four diagonal directions (sx,sy) in
// {-1,+1}^2, the set of F's neighbors whose lattice offset (dx,dz) has
// |dx|<=1, |dz|<=1, and matching sign on each axis (a zero offset matches
// either sign, so F itself is always a member of its own four candidate
// sets) is collected. A set of exactly four distinct ordinals is the four
// corners of one unit cell and is emitted as a Quad.
//
// Because every interior cell has four corners, each physical quad is
// naturally discovered once per corner (four times total, via the four
// opposing direction pairs); these duplicates are collapsed before
// returning, since spec.md §8 Scenario S1 counts one quad per physical
// cell, not one per corner that found it.
func ExtractQuads(fragments []raster.Fragment, neighbors [][]int) []Quad {
	dirs := [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	found := make(map[Quad]bool)
	for f, frag := range fragments {
		for _, dir := range dirs {
			seen := make(map[int]bool, 4)
			for _, n := range neighbors[f] {
				dx := fragments[n].Index.Ix - frag.Index.Ix
				dz := fragments[n].Index.Iz - frag.Index.Iz
				if !inUnitCell(dx, dz, dir) {
					continue
				}
				seen[n] = true
			}
			if len(seen) != 4 {
				continue
			}
			ords := make([]int, 0, 4)
			for ord := range seen {
				ords = append(ords, ord)
			}
			sort.Ints(ords)
			found[Quad{ords[0], ords[1], ords[2], ords[3]}] = true
		}
	}

	quads := make([]Quad, 0, len(found))
	for q := range found {
		quads = append(quads, q)
	}
	sort.Slice(quads, func(i, j int) bool {
		for k := 0; k < 4; k++ {
			if quads[i][k] != quads[j][k] {
				return quads[i][k] < quads[j][k]
			}
		}
		return false
	})
	return quads
}

func inUnitCell(dx, dz int, dir [2]int) bool {
	if dx < -1 || dx > 1 || dz < -1 || dz > 1 {
		return false
	}
	return signMatches(dx, dir[0]) && signMatches(dz, dir[1])
}

// signMatches reports whether v's sign matches s's, treating a zero v as
// matching either sign (spec.md §4.5: "treating zero as matching either
// sign").
func signMatches(v, s int) bool {
	if v == 0 {
		return true
	}
	return (v > 0) == (s > 0)
}
