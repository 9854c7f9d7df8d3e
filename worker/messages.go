package worker

// UIMsg is the tagged sum of messages the UI lane sends to the worker
// lane (spec.md §6). Implementers should type-switch exhaustively rather
// than rely on a default branch (spec.md §9's "Duck-typed channels" note).
type UIMsg interface {
	isUIMsg()
}

// OpenFile replaces the worker's Draft with the pattern loaded from path.
type OpenFile struct{ Path string }

// Pin sets the pinned and rigid flags on the currently-highlighted lines.
type Pin struct{ Pinned, Rigid bool }

// Link sets (or, if nil, clears) the link id on the currently-highlighted
// lines.
type Link struct{ ID *uint32 }

// Render begins rasterization with the given parameters.
type Render struct{ Params RenderParams }

// Back cancels the in-flight rasterization, or has no effect if none is
// running, returning the worker to the drafting view.
type Back struct{}

// Close requests an orderly worker shutdown.
type Close struct{}

func (OpenFile) isUIMsg() {}
func (Pin) isUIMsg()      {}
func (Link) isUIMsg()     {}
func (Render) isUIMsg()   {}
func (Back) isUIMsg()     {}
func (Close) isUIMsg()    {}

// WorkerMsg is the tagged sum of messages the worker lane sends back to
// the UI lane (spec.md §6).
type WorkerMsg interface {
	isWorkerMsg()
}

// PinState reports the current selection's pinned/rigid tri-state, for
// the UI lane to sync its widgets against.
type PinState struct {
	Pinned, Rigid Quadstate
}

// RenderProgress reports monotone rasterization progress in [0,1].
type RenderProgress struct{ Value float64 }

func (PinState) isWorkerMsg()       {}
func (RenderProgress) isWorkerMsg() {}
func (Close) isWorkerMsg()          {}
