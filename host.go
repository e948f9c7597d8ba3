package cellmon

// Listener receives cell lifecycle events from a host. For a given execution
// context a host delivers events sequentially, in the order
// OnPreRun → OnOutput (zero or more) → OnPostRun, and never concurrently.
//
// [Monitor] implements Listener; user code normally does not.
type Listener interface {
	// OnPreRun is delivered once, before the cell executes.
	OnPreRun(event PreRunEvent)

	// OnOutput is delivered for each output chunk while the cell runs.
	OnOutput(event OutputEvent)

	// OnPostRun is delivered once, after the cell finishes.
	OnPostRun(event PostRunEvent)
}

// Host is the capability interface a notebook kernel (or any other cell
// executor) exposes so a monitor can observe its lifecycle events.
//
// SetListener installs l as the single active listener, replacing any
// previous one; installing the same listener twice must not cause duplicate
// delivery. A nil l detaches the current listener. SetListener returns an
// error only when the host's event interface is unavailable.
//
// The host/local subpackage provides a subprocess-backed implementation.
type Host interface {
	SetListener(l Listener) error
}
