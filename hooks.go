package cellmon

// -----------------------------------------------------------------------------
// Phase Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks observe cell execution at a specific lifecycle phase. Implement any
// combination of these interfaces on a single value and pass it to
// [Monitor.RegisterHook]; every slot the value implements is filled.
//
// Example:
//
//	type AuditHook struct {
//	    log *log.Logger
//	}
//
//	func (h *AuditHook) OnPreRun(e cellmon.PreRunEvent) {
//	    h.log.Printf("running cell %d", e.ExecutionCount)
//	}
//
//	func (h *AuditHook) OnPostRun(e cellmon.PostRunEvent) {
//	    h.log.Printf("cell %d finished in %v", e.ExecutionCount, e.Duration)
//	}
//
//	// Compile-time checks
//	var _ cellmon.PreRunHook = (*AuditHook)(nil)
//	var _ cellmon.PostRunHook = (*AuditHook)(nil)
//
// Hooks should not panic. If one does, the monitor recovers, reports the
// failure as a warning, and continues the cell's remaining phases.
// -----------------------------------------------------------------------------

// PreRunHook is implemented by hooks that want the cell source before it runs.
type PreRunHook interface {
	// OnPreRun is called once per cell, before execution starts.
	OnPreRun(event PreRunEvent)
}

// RealtimeHook is implemented by hooks that want output as it is produced.
type RealtimeHook interface {
	// OnRealtime is called for each real-time dispatch step: once per
	// host-delivered chunk, or once per line in debug mode.
	OnRealtime(event OutputEvent)
}

// PostRunHook is implemented by hooks that want the final execution summary.
type PostRunHook interface {
	// OnPostRun is called once per cell, after execution ends. It is called
	// whether the cell succeeded or failed.
	OnPostRun(event PostRunEvent)
}

// -----------------------------------------------------------------------------
// Function Adapters
// -----------------------------------------------------------------------------

// PreRunFunc is the function form of a pre-run hook. It receives the cell
// source text.
type PreRunFunc func(source string)

// RealtimeFunc is the function form of a realtime hook. It receives one
// output chunk (or one line, in debug mode).
type RealtimeFunc func(text string)

// PostRunFunc is the function form of a post-run hook. It receives the full
// post-run event.
type PostRunFunc func(event PostRunEvent)
