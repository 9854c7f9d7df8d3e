package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterEmitClamps(t *testing.T) {
	var got []float64
	r := Reporter{OnProgress: func(p float64) { got = append(got, p) }}

	r.Emit(-1)
	r.Emit(0.5)
	r.Emit(2)

	assert.Equal(t, []float64{0, 0.5, 1}, got)
}

func TestReporterZeroValueIsNoop(t *testing.T) {
	var r Reporter
	assert.NotPanics(t, func() { r.Emit(0.5) })
	assert.False(t, r.Cancelled())
}

func TestReporterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := Reporter{Ctx: ctx}
	assert.False(t, r.Cancelled())
	cancel()
	assert.True(t, r.Cancelled())
}

func TestReporterSubRescales(t *testing.T) {
	var got []float64
	parent := Reporter{OnProgress: func(p float64) { got = append(got, p) }}
	child := parent.Sub(1.0/3, 2.0/3)

	child.Emit(0)
	child.Emit(1)

	assert.InDelta(t, 1.0/3, got[0], 1e-9)
	assert.InDelta(t, 2.0/3, got[1], 1e-9)
}
