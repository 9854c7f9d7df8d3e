package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Index3 arithmetic and neighborhood enumeration
//----------------------------------------------------------------------------//

func TestIndex3Arithmetic(t *testing.T) {
	a := Index3{Ix: 2, Iy: 0, Iz: 3}
	b := Index3{Ix: 1, Iy: 0, Iz: 1}

	assert.Equal(t, Index3{Ix: 1, Iy: 0, Iz: 2}, a.Sub(b))
	assert.Equal(t, Index3{Ix: 3, Iy: 0, Iz: 4}, a.Add(b))
	assert.True(t, a.Equal(Index3{Ix: 2, Iy: 0, Iz: 3}))
	assert.False(t, a.Equal(b))
	assert.InDelta(t, 3.605551275, a.Length(), 1e-6)
}

func TestNeighbors26(t *testing.T) {
	offsets := Neighbors26()
	require.Len(t, offsets, 26)

	seen := make(map[Index3]bool, 26)
	for _, o := range offsets {
		assert.False(t, o.Equal(Index3{}), "must not include the zero offset")
		assert.True(t, o.Ix >= -1 && o.Ix <= 1)
		assert.True(t, o.Iy >= -1 && o.Iy <= 1)
		assert.True(t, o.Iz >= -1 && o.Iz <= 1)
		seen[o] = true
	}
	assert.Len(t, seen, 26, "offsets must be distinct")
}

func TestCube(t *testing.T) {
	cases := []struct {
		k    int
		want int
	}{
		{0, 1},
		{1, 27},
		{2, 125},
	}
	for _, tc := range cases {
		offsets := Cube(tc.k)
		assert.Len(t, offsets, tc.want)
		var sawZero bool
		for _, o := range offsets {
			if o.Equal(Index3{}) {
				sawZero = true
			}
		}
		assert.True(t, sawZero, "Cube must include the zero offset (a fragment is its own neighbor before exclusion)")
	}
}
