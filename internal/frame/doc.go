// Package frame drives the rain one tick at a time.
//
// A [Loop] is the only owner of the control state and the stream storage.
// Each tick it polls its [InputSource], folds the keys through
// [control.ApplyKey], re-reads the terminal size from its [OutputSink],
// advances the simulator, composes a [render.Batch] and hands it to the
// sink. [Loop.Run] adds the sleep between ticks and stops on quit, on a
// terminal error or when its context is cancelled.
//
// The loop has exactly two phases, [Running] and [Terminating]. Restoring
// the terminal is the backend's job and happens after Run returns.
package frame
