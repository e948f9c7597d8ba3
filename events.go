package cellmon

import "time"

// -----------------------------------------------------------------------------
// Cell Lifecycle Events
// -----------------------------------------------------------------------------

// CellEvent is a marker interface for all cell lifecycle events.
type CellEvent interface {
	cellEvent()
}

// Stream identifies which output stream a real-time chunk came from.
type Stream string

const (
	// StreamStdout marks output written to the cell's standard output.
	StreamStdout Stream = "stdout"

	// StreamStderr marks output written to the cell's standard error.
	StreamStderr Stream = "stderr"
)

// Status describes how a cell execution ended.
type Status string

const (
	// StatusOK means the cell ran to completion.
	StatusOK Status = "ok"

	// StatusError means the cell failed (non-zero exit, interpreter error).
	StatusError Status = "error"
)

// PreRunEvent is emitted once before a cell starts executing.
type PreRunEvent struct {
	// Source is the cell source text about to be executed.
	Source string

	// ExecutionCount is the host's 1-indexed execution counter.
	ExecutionCount int

	// StartedAt is when the host began executing the cell.
	StartedAt time.Time
}

func (PreRunEvent) cellEvent() {}

// OutputEvent is emitted for each chunk of output the cell produces while
// running. Chunk granularity is host-defined; the monitor's debug mode can
// split a chunk further into per-line steps.
type OutputEvent struct {
	// Text is the output chunk, including any trailing newline the host
	// delivered.
	Text string

	// Stream is the originating stream (stdout or stderr).
	Stream Stream
}

func (OutputEvent) cellEvent() {}

// PostRunEvent is emitted once after a cell finishes executing.
type PostRunEvent struct {
	// Source is the cell source text that was executed.
	Source string

	// ExecutionCount is the host's 1-indexed execution counter.
	ExecutionCount int

	// Duration is how long the cell took to execute.
	Duration time.Duration

	// Status is ok or error.
	Status Status

	// Err is the execution error when Status is error, nil otherwise.
	Err error

	// Result is a short preview of the cell's result, host-defined
	// (e.g. the last line of output for a subprocess host).
	Result string
}

func (PostRunEvent) cellEvent() {}

// LineCount returns the number of source lines the cell contained.
func (e PostRunEvent) LineCount() int {
	return countLines(e.Source)
}
