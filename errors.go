package cellmon

import (
	"errors"
	"fmt"
)

// ErrInvalidHook is returned by [Monitor.RegisterHook] and [HookSet.Register]
// when the given value implements none of the phase hook interfaces.
// Validation happens eagerly at registration, never at dispatch.
var ErrInvalidHook = errors.New("cellmon: hook implements no phase interface")

// HostError wraps a failure to attach the monitor to a host. It is the only
// error surfaced by [Monitor.Activate]: without a host to attach to, the
// monitor has nothing to observe.
type HostError struct {
	Err error
}

func (e *HostError) Error() string {
	return fmt.Sprintf("cellmon: host integration failed: %v", e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// HookError describes a hook failure during dispatch. Hook failures are
// reported as warnings and never propagate to the host or abort the cell.
type HookError struct {
	// Phase is the lifecycle phase whose hook failed: "pre-run",
	// "realtime", or "post-run".
	Phase string

	// Err is the recovered panic value, wrapped.
	Err error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("cellmon: %s hook failed: %v", e.Phase, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
