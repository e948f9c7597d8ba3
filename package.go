// Package cellmon monitors notebook-style cell execution and prints colored
// pre-run, real-time, and post-run information, with optional user hooks at
// each lifecycle phase.
//
// A [Monitor] attaches to a [Host] (any source of cell lifecycle events) and,
// for every cell the host executes, observes exactly one pre-run event, zero
// or more real-time output events, and one post-run event, in that order. At
// each phase the monitor performs its default colored print and then invokes
// the user hook registered for that phase, if any.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//
//	    "github.com/Dataxcelerator/cellmon"
//	    "github.com/Dataxcelerator/cellmon/host/local"
//	)
//
//	func main() {
//	    runner := local.NewRunner()
//
//	    mon := cellmon.NewMonitor()
//	    mon.SetHooks(cellmon.HookFuncs{
//	        PreRun: func(source string) {
//	            // called with the cell source before it runs
//	        },
//	    })
//	    if err := mon.Activate(runner, false); err != nil {
//	        panic(err)
//	    }
//
//	    runner.Run(context.Background(), "print('hello')")
//	}
//
// # Hooks
//
// Hooks can be registered two ways. [Monitor.SetHooks] takes typed functions
// and updates only the slots you provide; [Monitor.RegisterHook] accepts any
// value implementing one or more of the phase interfaces ([PreRunHook],
// [RealtimeHook], [PostRunHook]) and fills every slot the value implements.
// Either way, at most one hook is active per phase and the last registration
// wins.
//
// A hook that panics never aborts the monitored cell: the panic is recovered,
// reported as a warning, and the remaining phases run normally. The default
// colored print for a phase always happens, hook or no hook.
//
// # Debug Mode
//
// Activating with debug=true surfaces real-time output line by line: a chunk
// of N lines becomes N distinct real-time steps, each printed and each
// delivered to the realtime hook. Without debug mode, dispatch granularity
// follows whatever chunks the host delivers.
//
// # Hosts
//
// The host kernel is modeled as the [Host] interface; cellmon does not
// implement a kernel itself. The host/local subpackage provides a subprocess
// runner that executes cell source through a configurable interpreter and is
// the binding used by the cellmon CLI. Hosts deliver events sequentially for
// a given execution context, so dispatch paths take no locks.
package cellmon
