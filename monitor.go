package cellmon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Dataxcelerator/cellmon/printer"
)

// Monitor observes a host's cell lifecycle events, prints the default colored
// output for each phase, and dispatches to the registered user hooks.
//
// A Monitor owns its configuration (hook set, debug flag, printer) explicitly,
// so independent monitors can coexist against different hosts. It implements
// [Listener]; the host calls the On* methods sequentially per cell.
type Monitor struct {
	hooks   *HookSet
	printer *printer.Printer
	host    Host
	debug   bool
}

// NewMonitor creates a Monitor with an empty hook set, printing to stdout
// (warnings to stderr) with color detection.
func NewMonitor() *Monitor {
	return &Monitor{
		hooks:   NewHookSet(),
		printer: printer.New(os.Stdout, printer.WithErrWriter(os.Stderr)),
	}
}

// WithPrinter replaces the monitor's printer. Returns the monitor for
// chaining.
func (m *Monitor) WithPrinter(p *printer.Printer) *Monitor {
	m.printer = p
	return m
}

// WithHooks replaces the monitor's entire hook set. Returns the monitor for
// chaining. Useful when sharing one HookSet across monitors.
func (m *Monitor) WithHooks(hooks *HookSet) *Monitor {
	m.hooks = hooks
	return m
}

// SetHooks updates the hook slots whose fields in funcs are non-nil and
// leaves the rest unchanged.
func (m *Monitor) SetHooks(funcs HookFuncs) {
	m.hooks.Set(funcs)
}

// RegisterHook fills every hook slot the given value implements via the phase
// interfaces. Returns [ErrInvalidHook] when it implements none.
func (m *Monitor) RegisterHook(hook any) error {
	return m.hooks.Register(hook)
}

// Activate attaches the monitor to host as its listener and sets the debug
// flag. Calling Activate again, on the same or a different host, replaces the
// previous attachment; events are never delivered twice.
//
// Returns a [HostError] when host is nil or refuses the listener. This is the
// monitor's only hard error surface; everything later is reported, not
// propagated.
func (m *Monitor) Activate(host Host, debug bool) error {
	if host == nil {
		return &HostError{Err: errors.New("host is nil")}
	}
	if err := host.SetListener(m); err != nil {
		return &HostError{Err: err}
	}
	if m.host != nil && m.host != host {
		// Moving to a new host: detach from the old one. A detach failure
		// is non-fatal but worth surfacing.
		if err := m.host.SetListener(nil); err != nil {
			m.printer.Warningf("failed to detach previous host: %v", err)
		}
	}
	m.host = host
	m.debug = debug
	m.printer.Activated(debug)
	return nil
}

// Deactivate detaches the monitor from its host. Safe to call when the
// monitor was never activated.
func (m *Monitor) Deactivate() {
	if m.host == nil {
		return
	}
	if err := m.host.SetListener(nil); err != nil {
		m.printer.Warningf("failed to detach host: %v", err)
	}
	m.host = nil
	m.printer.Deactivated()
}

// Active reports whether the monitor is attached to a host.
func (m *Monitor) Active() bool {
	return m.host != nil
}

// Debug reports whether real-time output is surfaced per line.
func (m *Monitor) Debug() bool {
	return m.debug
}

// OnPreRun handles the pre-run event: default blue print of the cell source,
// then the pre-run hook.
func (m *Monitor) OnPreRun(event PreRunEvent) {
	m.printer.PreRun(event.Source)
	if m.hooks.preRun != nil {
		m.fire("pre-run", func() { m.hooks.preRun(event) })
	}
}

// OnOutput handles a real-time output event. In debug mode the chunk is split
// into lines and each line becomes its own dispatch step (default print, then
// hook); otherwise the chunk is one step.
func (m *Monitor) OnOutput(event OutputEvent) {
	if event.Text == "" {
		return
	}
	if !m.debug {
		m.printer.Chunk(event.Text)
		if m.hooks.realtime != nil {
			m.fire("realtime", func() { m.hooks.realtime(event) })
		}
		return
	}
	for _, line := range strings.Split(strings.TrimRight(event.Text, "\n"), "\n") {
		m.printer.Line(line)
		if m.hooks.realtime != nil {
			lineEvent := OutputEvent{Text: line, Stream: event.Stream}
			m.fire("realtime", func() { m.hooks.realtime(lineEvent) })
		}
	}
}

// OnPostRun handles the post-run event: default yellow summary, then the
// post-run hook.
func (m *Monitor) OnPostRun(event PostRunEvent) {
	m.printer.Summary(string(event.Status), event.Duration, event.LineCount(), event.Result)
	if m.hooks.postRun != nil {
		m.fire("post-run", func() { m.hooks.postRun(event) })
	}
}

// fire invokes a hook, recovering panics so a failing hook never aborts the
// monitored cell or the remaining phases. Failures are reported as warnings.
func (m *Monitor) fire(phase string, f func()) {
	defer func() {
		if r := recover(); r != nil {
			err := &HookError{Phase: phase, Err: fmt.Errorf("%v", r)}
			m.printer.Warningf("%v", err)
		}
	}()
	f()
}

// countLines returns the number of lines in source, ignoring a trailing
// newline.
func countLines(source string) int {
	return len(strings.Split(strings.TrimRight(source, "\n"), "\n"))
}

// Compile-time check that Monitor implements Listener.
var _ Listener = (*Monitor)(nil)
