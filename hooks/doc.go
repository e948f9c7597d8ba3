// Package hooks provides ready-made hook implementations for cellmon.
//
// Each hook implements one or more of the phase interfaces
// ([cellmon.PreRunHook], [cellmon.RealtimeHook], [cellmon.PostRunHook]) and
// is registered with [cellmon.Monitor.RegisterHook]:
//
//	mon := cellmon.NewMonitor()
//	mon.RegisterHook(hooks.NewWriter(logFile))
//
// Available hooks:
//   - [Recorder] - captures every event in order (useful in tests)
//   - [Writer] - logs phase events as YAML blocks to an io.Writer
//   - [Diff] - prints a unified diff when a cell is re-run with changed source
package hooks
