package hooks

import (
	"github.com/Dataxcelerator/cellmon"
)

// Recorder captures every event it receives, in delivery order. It implements
// all three phase interfaces and doubles as a [cellmon.Listener], so it can
// observe a host directly as well as through a monitor.
//
// Recorder is not safe for concurrent use by multiple goroutines; hosts
// deliver events sequentially, which is the only access pattern it needs.
type Recorder struct {
	events []cellmon.CellEvent
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnPreRun records the pre-run event.
func (r *Recorder) OnPreRun(event cellmon.PreRunEvent) {
	r.events = append(r.events, event)
}

// OnRealtime records a real-time output event.
func (r *Recorder) OnRealtime(event cellmon.OutputEvent) {
	r.events = append(r.events, event)
}

// OnOutput records a real-time output event (Listener form).
func (r *Recorder) OnOutput(event cellmon.OutputEvent) {
	r.events = append(r.events, event)
}

// OnPostRun records the post-run event.
func (r *Recorder) OnPostRun(event cellmon.PostRunEvent) {
	r.events = append(r.events, event)
}

// Events returns the recorded events in delivery order.
func (r *Recorder) Events() []cellmon.CellEvent {
	return r.events
}

// Outputs returns just the recorded output events, in order.
func (r *Recorder) Outputs() []cellmon.OutputEvent {
	var outs []cellmon.OutputEvent
	for _, e := range r.events {
		if out, ok := e.(cellmon.OutputEvent); ok {
			outs = append(outs, out)
		}
	}
	return outs
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}

// Compile-time checks.
var (
	_ cellmon.PreRunHook   = (*Recorder)(nil)
	_ cellmon.RealtimeHook = (*Recorder)(nil)
	_ cellmon.PostRunHook  = (*Recorder)(nil)
	_ cellmon.Listener     = (*Recorder)(nil)
)
