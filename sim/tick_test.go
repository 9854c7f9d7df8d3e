package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clothmesh/cloth"
	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/mesh"
	"github.com/katalvlaran/clothmesh/progress"
	"github.com/katalvlaran/clothmesh/raster"
)

// square3x3 builds a flat 3x3 patch at rest positions (position = index *
// scale), one section, full 3x3x1 neighborhoods — the S1/S7 scenario
// fixture (spec.md §8 scenarios S1, property 7).
func square3x3(scale float64) *cloth.Cloth {
	var frags []raster.Fragment
	idx := make(map[geom.Index3]int)
	for x := 0; x < 3; x++ {
		for z := 0; z < 3; z++ {
			i := geom.Index3{Ix: x, Iy: 0, Iz: z}
			idx[i] = len(frags)
			frags = append(frags, raster.Fragment{
				Index:    i,
				Position: geom.Point3{X: float64(x) * scale, Y: 0, Z: float64(z) * scale},
			})
		}
	}
	neighbors, err := mesh.Link(frags, idx, nil, 1, progress.Reporter{})
	if err != nil {
		panic(err)
	}
	sections := make([][]int, 1)
	sectionOf := make([]int, len(frags))
	for i := range frags {
		sections[0] = append(sections[0], i)
	}
	return &cloth.Cloth{
		Fragments: frags,
		Neighbors: neighbors,
		Sections:  sections,
		SectionOf: sectionOf,
		Scale:     scale,
		Gravity:   0,
		Drag:      1,
		Strength:  0.02,
	}
}

func TestTickRestShapeUnchanged(t *testing.T) {
	c := square3x3(0.1)
	before := make([]geom.Point3, len(c.Fragments))
	for i, f := range c.Fragments {
		before[i] = f.Position
	}

	for step := 0; step < 50; step++ {
		Tick(c)
	}

	for i, f := range c.Fragments {
		assert.InDelta(t, before[i].X, f.Position.X, 1e-9)
		assert.InDelta(t, before[i].Y, f.Position.Y, 1e-9)
		assert.InDelta(t, before[i].Z, f.Position.Z, 1e-9)
	}
}

func TestTickPinIdempotence(t *testing.T) {
	c := square3x3(0.1)
	for x := 0; x < 3; x++ {
		c.Fragments[idxOf(c, x, 0)].Pinned = true
	}
	c.Gravity = 0.01
	c.Drag = 0.9

	pinnedBefore := make([]geom.Point3, 0, 3)
	for x := 0; x < 3; x++ {
		pinnedBefore = append(pinnedBefore, c.Fragments[idxOf(c, x, 0)].Position)
	}

	for step := 0; step < 1000; step++ {
		Tick(c)
	}

	for i, x := range []int{0, 1, 2} {
		p := c.Fragments[idxOf(c, x, 0)].Position
		assert.Equal(t, pinnedBefore[i], p)
	}
}

func idxOf(c *cloth.Cloth, x, z int) int {
	for i, f := range c.Fragments {
		if f.Index.Ix == x && f.Index.Iz == z {
			return i
		}
	}
	panic("not found")
}

func TestTickDragMonotonicity(t *testing.T) {
	// single free fragment, no neighbors, no gravity: velocity decays by
	// exactly drag^n (spec.md §8 property 6).
	frags := []raster.Fragment{{
		Index:    geom.Index3{},
		Position: geom.Point3{},
		Velocity: geom.Point3{X: 1, Y: 2, Z: 3},
	}}
	c := &cloth.Cloth{
		Fragments: frags,
		Neighbors: [][]int{{0}},
		Sections:  [][]int{{0}},
		SectionOf: []int{0},
		Scale:     1,
		Drag:      0.9,
	}
	v0 := frags[0].Velocity.Length()

	const n = 10
	for i := 0; i < n; i++ {
		Tick(c)
	}

	want := v0 * math.Pow(0.9, n)
	assert.InDelta(t, want, c.Fragments[0].Velocity.Length(), 1e-9)
}

func TestTickRigidReducesYVariance(t *testing.T) {
	rigid := square3x3(0.1)
	for i := range rigid.Fragments {
		rigid.Fragments[i].Rigid = true
	}
	rigid.Gravity = 0.01
	rigid.Drag = 0.95
	rigid.Strength = 0.02
	// perturb one corner's height to give the plane-pull something to do.
	rigid.Fragments[0].Position.Y += 0.5

	plain := square3x3(0.1)
	plain.Gravity = 0.01
	plain.Drag = 0.95
	plain.Strength = 0.02
	plain.Fragments[0].Position.Y += 0.5

	for step := 0; step < 200; step++ {
		Tick(rigid)
		Tick(plain)
	}

	assert.Less(t, yVariance(rigid.Fragments), yVariance(plain.Fragments))
}

func yVariance(fragments []raster.Fragment) float64 {
	var mean float64
	for _, f := range fragments {
		mean += f.Position.Y
	}
	mean /= float64(len(fragments))

	var variance float64
	for _, f := range fragments {
		d := f.Position.Y - mean
		variance += d * d
	}
	return variance / float64(len(fragments))
}

func TestTickSeamPartnersPullTogether(t *testing.T) {
	// two isolated fragments, distinct sections, linked as seam partners:
	// the seam override must still apply force despite differing sections
	// (spec.md §4.6's seam override is checked after the section-zero
	// rule, not instead of it).
	link := uint32(7)
	lv0, lv1 := 0.0, 1.0
	frags := []raster.Fragment{
		{Index: geom.Index3{Ix: 0}, Position: geom.Point3{X: 0}, LinkNumber: &link, LineID: 1, LinkVector: &lv0},
		{Index: geom.Index3{Ix: 100}, Position: geom.Point3{X: 5}, LinkNumber: &link, LineID: 2, LinkVector: &lv1},
	}
	c := &cloth.Cloth{
		Fragments:    frags,
		Neighbors:    [][]int{{1}, {0}},
		Sections:     [][]int{{0}, {1}},
		SectionOf:    []int{0, 1},
		Scale:        1,
		Drag:         1,
		SeamStrength: 0.5,
	}

	Tick(c)

	// force pulls fragment 0 toward fragment 1 (positive X direction).
	require.Greater(t, c.Fragments[0].Velocity.X, 0.0)
	require.Less(t, c.Fragments[1].Velocity.X, 0.0)
}
