package worker

import (
	"context"
	"errors"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/clothmesh/cloth"
	"github.com/katalvlaran/clothmesh/draft"
	"github.com/katalvlaran/clothmesh/geom"
	"github.com/katalvlaran/clothmesh/progress"
)

// Worker is the worker lane of spec.md §5: it exclusively owns the Draft
// (once an OpenFile has been delivered) and the Cloth, and is the only
// side that ever mutates either. In and Out are the bounded SPSC channels
// the UI lane talks through; callers are expected to size them 1, per
// spec.md §5's "channels are bounded to 1 slot".
//
// OnError, if set, receives non-fatal errors Loop would otherwise swallow
// silently: a draft parse failure (spec.md §7(a), render not started) or
// a rasterization error other than cancellation. A nil OnError is a valid
// no-op, matching progress.Reporter's nil-hook convention.
type Worker struct {
	Draft   *draft.Draft
	Cloth   *cloth.Cloth
	In      <-chan UIMsg
	Out     chan<- WorkerMsg
	OnError func(error)

	closed atomic.Bool
}

// New returns a Worker with an empty Draft, ready for Loop.
func New(in <-chan UIMsg, out chan<- WorkerMsg) *Worker {
	return &Worker{Draft: draft.New(), In: in, Out: out}
}

// renderResult is what an in-flight Render delivers back to Loop's select
// once cloth.Build returns, successfully or not.
type renderResult struct {
	cloth *cloth.Cloth
	err   error
}

// Loop runs the worker lane's message pump until ctx is done, a Close
// message arrives, or In is closed (fatal, per spec.md §7(c)). It always
// emits exactly one Close on the way out (spec.md §9's "at-most-once
// Close emission").
//
// A Render message starts rasterization in its own goroutine so Loop can
// keep servicing Back (and a subsequent Render, which cancels the
// previous one) without blocking on cloth.Build; Back or a fresh Render
// cancels the in-flight build's context, which cloth.Build's progress
// polling observes at its next poll point (spec.md §5's ordering
// guarantee).
func (w *Worker) Loop(ctx context.Context) error {
	defer w.sendClose()

	var renderCancel context.CancelFunc
	renderDone := make(chan renderResult, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case res := <-renderDone:
			renderCancel = nil
			if res.err != nil {
				if !errors.Is(res.err, progress.ErrCancelled) {
					w.reportError(res.err)
				}
				continue
			}
			w.Cloth = res.cloth

		case msg, ok := <-w.In:
			if !ok {
				return pkgerrors.Wrap(ErrChannelClosed, "worker: inbound channel closed")
			}

			switch m := msg.(type) {
			case OpenFile:
				w.handleOpenFile(m)
			case Pin:
				w.handlePin(m)
			case Link:
				w.handleLink(m)
			case Render:
				if renderCancel != nil {
					renderCancel()
				}
				renderCtx, cancel := context.WithCancel(ctx)
				renderCancel = cancel
				go w.startRender(renderCtx, m.Params, renderDone)
			case Back:
				if renderCancel != nil {
					renderCancel()
					renderCancel = nil
				}
			case Close:
				return nil
			}
		}
	}
}

func (w *Worker) startRender(ctx context.Context, p RenderParams, done chan<- renderResult) {
	c, err := cloth.Build(w.Draft,
		cloth.WithContext(ctx),
		cloth.WithOnProgress(w.sendProgress),
		cloth.WithDetail(p.Detail),
		cloth.WithStiffness(p.Stiffness),
		cloth.WithGravity(p.Gravity),
		cloth.WithDrag(p.Drag),
		cloth.WithStrength(p.Strength),
		cloth.WithSeamStrength(p.SeamStrength),
	)
	done <- renderResult{cloth: c, err: err}
}

func (w *Worker) sendProgress(v float64) {
	w.Out <- RenderProgress{Value: v}
}

// sendClose emits Close exactly once across this Worker's lifetime, CAS
// on an atomic bool (spec.md §9).
func (w *Worker) sendClose() {
	if w.closed.CompareAndSwap(false, true) {
		w.Out <- Close{}
	}
}

func (w *Worker) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}

func (w *Worker) handleOpenFile(m OpenFile) {
	d, err := draft.Load(m.Path)
	if err != nil {
		w.reportError(err)
		return
	}
	w.Draft = d
}

// handlePin sets Pinned/Rigid on every currently-highlighted line, a
// documented no-op on an empty selection (spec.md §7(d)), then reports
// the resulting tri-state back to the UI lane.
func (w *Worker) handlePin(m Pin) {
	ids := highlightedIndices(w.Draft.Lines)
	if len(ids) == 0 {
		return
	}
	for _, i := range ids {
		w.Draft.Lines[i].Pinned = m.Pinned
		w.Draft.Lines[i].Rigid = m.Rigid
	}
	w.sendPinState()
}

// handleLink assigns (or clears) the link id on every currently-
// highlighted line, a documented no-op on an empty selection.
func (w *Worker) handleLink(m Link) {
	ids := highlightedIndices(w.Draft.Lines)
	if len(ids) == 0 {
		return
	}
	w.Draft.SetLink(ids, m.ID)
}

func (w *Worker) sendPinState() {
	lines := highlightedLines(w.Draft.Lines)
	w.Out <- PinState{
		Pinned: DeriveQuadstate(lines, func(l geom.Line) bool { return l.Pinned }),
		Rigid:  DeriveQuadstate(lines, func(l geom.Line) bool { return l.Rigid }),
	}
}

func highlightedIndices(lines []geom.Line) []int {
	var ids []int
	for i, l := range lines {
		if l.Highlighted {
			ids = append(ids, i)
		}
	}
	return ids
}

func highlightedLines(lines []geom.Line) []geom.Line {
	var out []geom.Line
	for _, l := range lines {
		if l.Highlighted {
			out = append(out, l)
		}
	}
	return out
}
