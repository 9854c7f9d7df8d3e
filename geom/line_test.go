package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Hitbox / InSlice / IntersectOnX
//----------------------------------------------------------------------------//

func TestLineHitbox(t *testing.T) {
	l := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 10, Y: 0}}

	cases := []struct {
		name      string
		point     Point2
		threshold float64
		want      bool
	}{
		{"on segment", Point2{X: 5, Y: 0}, 0.1, true},
		{"within threshold above", Point2{X: 5, Y: 0.2}, 0.3, true},
		{"beyond threshold above", Point2{X: 5, Y: 1}, 0.3, false},
		{"beyond end cap", Point2{X: 10.5, Y: 0}, 0.3, false},
		{"within end cap", Point2{X: 10.2, Y: 0}, 0.3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.Hitbox(tc.point, tc.threshold))
		})
	}
}

func TestLineInSlice(t *testing.T) {
	l := Line{P1: Point2{X: 2, Y: 0}, P2: Point2{X: 8, Y: 5}}

	assert.True(t, l.InSlice(Point2{X: 5, Y: 100}, 0))
	assert.True(t, l.InSlice(Point2{X: 2, Y: 100}, 0))
	assert.False(t, l.InSlice(Point2{X: 1.99, Y: 100}, 0))
	assert.True(t, l.InSlice(Point2{X: 1.5, Y: 100}, 1))
}

func TestLineIntersectOnX(t *testing.T) {
	l := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 10, Y: 10}}
	y, ok := l.IntersectOnX(Point2{X: 4})
	require.True(t, ok)
	assert.InDelta(t, 4, y, 1e-9)

	vertical := Line{P1: Point2{X: 3, Y: 0}, P2: Point2{X: 3, Y: 10}}
	_, ok = vertical.IntersectOnX(Point2{X: 3})
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Endpoint canonicalization and LinkVector
//----------------------------------------------------------------------------//

func TestLineEndpointOrdering(t *testing.T) {
	// p1.x < p2.x -> p2 ("high") comes first.
	l := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 10, Y: 0}}
	assert.Equal(t, l.P2, l.HighEndpoint())
	assert.Equal(t, l.P1, l.LowEndpoint())

	// Equal x, p1.y < p2.y -> p2 is high.
	tie := Line{P1: Point2{X: 5, Y: 1}, P2: Point2{X: 5, Y: 9}}
	assert.Equal(t, tie.P2, tie.HighEndpoint())
}

func TestLineLinkVector(t *testing.T) {
	l := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 10, Y: 0}}
	// high endpoint is (10,0); at the high end the parametric value is 0,
	// at the low end it is 1.
	assert.InDelta(t, 0, l.LinkVector(Point2{X: 10, Y: 0}), 1e-9)
	assert.InDelta(t, 1, l.LinkVector(Point2{X: 0, Y: 0}), 1e-9)
	assert.InDelta(t, 0.5, l.LinkVector(Point2{X: 5, Y: 0}), 1e-9)
}

func TestLineSameShape(t *testing.T) {
	a := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 1, Y: 1}, Pinned: true}
	b := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 1, Y: 1}, Pinned: true, LineID: 42}
	c := Line{P1: Point2{X: 0, Y: 0}, P2: Point2{X: 1, Y: 1}, Rigid: true}

	assert.True(t, a.SameShape(b))
	assert.False(t, a.SameShape(c))
}
