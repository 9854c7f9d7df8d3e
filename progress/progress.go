package progress

import (
	"context"
	"errors"
)

// ErrCancelled is returned by Rasterize/Segment/Link when a Reporter's
// context is cancelled mid-operation. Callers treat it as spec.md §7(b)
// describes: a silent abort, not a fatal error — the caller's existing
// Cloth (if any) is left untouched.
var ErrCancelled = errors.New("progress: cancelled")

// Reporter is a small, pass-by-value bundle of the cancellation context
// and progress hook a long-running phase polls. The zero Reporter is a
// valid no-op: nil OnProgress is never called, and a nil Ctx never
// cancels.
type Reporter struct {
	Ctx        context.Context
	OnProgress func(float64)
}

// Emit reports p (clamped to [0,1]) to OnProgress, if set.
func (r Reporter) Emit(p float64) {
	if r.OnProgress == nil {
		return
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	r.OnProgress(p)
}

// Cancelled reports whether r.Ctx has been cancelled. A nil Ctx is never
// cancelled, so callers that don't care about cancellation can pass a
// zero Reporter.
func (r Reporter) Cancelled() bool {
	if r.Ctx == nil {
		return false
	}
	select {
	case <-r.Ctx.Done():
		return true
	default:
		return false
	}
}

// Sub returns a Reporter whose Emit rescales its input from [0,1] into
// [lo,hi] of the parent's progress scale before forwarding, implementing
// the sub-phase progress budgets spec.md §4.2 step 4 assigns to the
// column sweep, segmentation, and neighborhood finalization phases.
func (r Reporter) Sub(lo, hi float64) Reporter {
	return Reporter{
		Ctx: r.Ctx,
		OnProgress: func(p float64) {
			r.Emit(lo + p*(hi-lo))
		},
	}
}
