// Package worker implements the UI<->worker lane protocol spec.md §5/§6
// describes: two cooperating single-threaded lanes exchanging tagged
// messages over bounded single-producer/single-consumer channels, plus
// the Quadstate selection value and the render-parameter bundle.
//
// What:
//
//   - UIMsg / WorkerMsg: the two tagged sum types, one per direction
//     (OpenFile/Pin/Link/Render/Back/Close going to the worker;
//     PinState/RenderProgress/Close coming back).
//   - RenderParams: the six Render(...) tunables as a named struct.
//   - Quadstate and DeriveQuadstate: the four-way selection tri-state and
//     the rule that derives it from a set of highlighted lines.
//   - Loop: the worker lane's message pump — owns the Draft and the
//     Cloth, rebuilds the Cloth on Render (cancellable mid-flight by
//     Back, per spec.md §5's ordering guarantee), and emits RenderProgress/
//     Close on the way out.
//
// Why channels in addition to progress.Reporter's context: a
// context.Context alone cancels the rasterizer/segmenter's internal poll
// loop, but spec.md §5/§6 specify an explicit bounded SPSC channel
// contract between two independently-scheduled lanes, with send-order
// and backpressure guarantees a bare context does not express. Loop is
// the boundary that owns both: it is the one goroutine that reads Back
// off the inbound channel and cancels the context.CancelFunc the
// in-flight cloth.Build call is polling.
package worker
