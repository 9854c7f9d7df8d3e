package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/clothmesh/geom"
)

func TestDeriveQuadstateEmptySelection(t *testing.T) {
	got := DeriveQuadstate(nil, func(l geom.Line) bool { return l.Pinned })
	assert.Equal(t, QuadNo, got)
}

func TestDeriveQuadstateAllTrue(t *testing.T) {
	lines := []geom.Line{{Pinned: true}, {Pinned: true}}
	assert.Equal(t, QuadOn, DeriveQuadstate(lines, func(l geom.Line) bool { return l.Pinned }))
}

func TestDeriveQuadstateAllFalse(t *testing.T) {
	lines := []geom.Line{{Pinned: false}, {Pinned: false}}
	assert.Equal(t, QuadOff, DeriveQuadstate(lines, func(l geom.Line) bool { return l.Pinned }))
}

func TestDeriveQuadstateMixed(t *testing.T) {
	lines := []geom.Line{{Pinned: true}, {Pinned: false}}
	assert.Equal(t, QuadMaybe, DeriveQuadstate(lines, func(l geom.Line) bool { return l.Pinned }))
}

func TestQuadstateString(t *testing.T) {
	assert.Equal(t, "On", QuadOn.String())
	assert.Equal(t, "Off", QuadOff.String())
	assert.Equal(t, "Maybe", QuadMaybe.String())
	assert.Equal(t, "No", QuadNo.String())
}
