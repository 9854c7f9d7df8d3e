package worker

import (
	"errors"

	"github.com/katalvlaran/clothmesh/geom"
)

// Sentinel errors for the worker lane.
var (
	// ErrChannelClosed is returned (wrapped) by Loop when the inbound In
	// channel is closed; per spec.md §7(c) this is always fatal.
	ErrChannelClosed = errors.New("worker: channel closed")

	// ErrEmptySelection names the empty-selection case of Pin/Link
	// (spec.md §7(d)). Loop handles that case as a silent no-op; this
	// error is never returned or reported.
	ErrEmptySelection = errors.New("worker: empty selection")
)

// Quadstate is the four-way tagged variant a multi-line selection's
// pinned/rigid flag collapses to: On (all selected lines agree, true),
// Off (all agree, false), Maybe (mixed), No (nothing selected) — spec.md
// §6.
type Quadstate int

const (
	// QuadOn means every highlighted line has the flag set.
	QuadOn Quadstate = iota
	// QuadOff means every highlighted line has the flag cleared.
	QuadOff
	// QuadMaybe means the highlighted lines disagree.
	QuadMaybe
	// QuadNo means the selection is empty.
	QuadNo
)

// String renders the Quadstate the way the UI lane displays it.
func (q Quadstate) String() string {
	switch q {
	case QuadOn:
		return "On"
	case QuadOff:
		return "Off"
	case QuadMaybe:
		return "Maybe"
	default:
		return "No"
	}
}

// DeriveQuadstate scans lines and applies pick to each, short-circuiting
// to the matching tri-state: an empty selection is No; all-true is On;
// all-false is Off; anything mixed is Maybe (SPEC_FULL.md §4 item 4,
// grounded on the original's `link_selected`-adjacent selection scan).
func DeriveQuadstate(lines []geom.Line, pick func(geom.Line) bool) Quadstate {
	if len(lines) == 0 {
		return QuadNo
	}
	allTrue, allFalse := true, true
	for _, l := range lines {
		if pick(l) {
			allFalse = false
		} else {
			allTrue = false
		}
	}
	switch {
	case allTrue:
		return QuadOn
	case allFalse:
		return QuadOff
	default:
		return QuadMaybe
	}
}

// RenderParams bundles the six tunables a Render command carries (spec.md
// §6; SPEC_FULL.md §4 item 5): sampling step, neighbor-cube half-edge,
// and the four integrator scalars.
type RenderParams struct {
	Detail       float64
	Stiffness    int
	Gravity      float64
	Drag         float64
	Strength     float64
	SeamStrength float64
}
