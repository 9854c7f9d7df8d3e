package geom

import "math"

// Index3 is an integer lattice coordinate. Rasterized fragments keep
// Iy == 0 always (the draft is flat); the third axis exists so the
// neighborhood cube and the 26-connectivity segmenter generalize cleanly
// to a 3D lattice without a special-cased 2D variant, the way gridgraph
// generalizes Conn4/Conn8 from one neighbor-offset table.
type Index3 struct {
	Ix, Iy, Iz int
}

// Equal reports component-wise equality.
func (a Index3) Equal(b Index3) bool {
	return a.Ix == b.Ix && a.Iy == b.Iy && a.Iz == b.Iz
}

// Sub returns the component-wise difference a-b.
func (a Index3) Sub(b Index3) Index3 {
	return Index3{a.Ix - b.Ix, a.Iy - b.Iy, a.Iz - b.Iz}
}

// Add returns the component-wise sum a+b.
func (a Index3) Add(b Index3) Index3 {
	return Index3{a.Ix + b.Ix, a.Iy + b.Iy, a.Iz + b.Iz}
}

// Length returns the Euclidean norm of the index treated as a vector,
// used by the integrator as the lattice rest-distance between two
// fragments (spec.md §4.6: dist = |G.index - F.index|).
func (a Index3) Length() float64 {
	return math.Sqrt(float64(a.Ix*a.Ix + a.Iy*a.Iy + a.Iz*a.Iz))
}

// Neighbors26 returns the 26 lattice offsets {-1,0,1}^3 excluding the
// zero offset, used by the section segmenter's flood fill.
//
// Grounded on gridgraph.GridGraph's precomputed neighborOffsets table
// (gridgraph/gridgraph.go), generalized from the 2D Conn4/Conn8 pair to
// the fixed 3D 26-neighborhood spec.md §4.3 calls for; stiffness never
// changes section membership (spec.md §9), so there is no analog of
// gridgraph's Conn4 vs Conn8 choice here — only one connectivity is ever
// used for sectioning.
func Neighbors26() []Index3 {
	offsets := make([]Index3, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, Index3{dx, dy, dz})
			}
		}
	}
	return offsets
}

// Cube returns every lattice offset within [-k,k]^3, including the zero
// offset, used by the neighborhood linker to build each fragment's
// stiffness-radius candidate set (spec.md §4.4).
func Cube(k int) []Index3 {
	if k < 0 {
		k = 0
	}
	offsets := make([]Index3, 0, (2*k+1)*(2*k+1)*(2*k+1))
	for dx := -k; dx <= k; dx++ {
		for dy := -k; dy <= k; dy++ {
			for dz := -k; dz <= k; dz++ {
				offsets = append(offsets, Index3{dx, dy, dz})
			}
		}
	}
	return offsets
}
