// Package local provides a subprocess-backed cell execution host. Each cell's
// source is handed to a configurable interpreter; stdout and stderr are
// streamed to the attached listener line by line while the cell runs.
package local

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/Dataxcelerator/cellmon"
)

// DefaultInterpreter is the argv prefix used to execute cell source when none
// is configured. The source text is appended as the final argument.
var DefaultInterpreter = []string{"python3", "-c"}

// maxLineBytes caps a single output line. Longer lines are truncated and
// reported; the rest of the pipe is still drained so the subprocess never
// blocks on a full pipe buffer.
const maxLineBytes = 1024 * 1024

// Runner executes cells in subprocesses and delivers lifecycle events to a
// single listener. Event delivery is serialized: even though stdout and
// stderr are drained concurrently, listeners observe one event at a time, and
// always in pre-run → output → post-run order for a given cell.
type Runner struct {
	emitMu      sync.Mutex
	listenerMu  sync.Mutex
	listener    cellmon.Listener
	interpreter []string
	execCount   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithInterpreter sets the argv prefix that executes cell source. The source
// is appended as the final argument, e.g. {"sh", "-c"} or {"python3", "-c"}.
func WithInterpreter(argv []string) Option {
	return func(r *Runner) {
		if len(argv) > 0 {
			r.interpreter = argv
		}
	}
}

// NewRunner creates a Runner using [DefaultInterpreter] unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{interpreter: DefaultInterpreter}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetListener installs l as the single active listener, replacing any
// previous one. A nil l detaches. Never returns an error.
func (r *Runner) SetListener(l cellmon.Listener) error {
	r.listenerMu.Lock()
	defer r.listenerMu.Unlock()
	r.listener = l
	return nil
}

// Run executes one cell. It emits the pre-run event, streams output events
// while the subprocess runs, then emits the post-run event. The returned
// error reflects the cell's own outcome (non-zero exit, start failure); it is
// the same error carried in the post-run event.
func (r *Runner) Run(ctx context.Context, source string) error {
	r.execCount++
	count := r.execCount
	start := time.Now()

	r.emit(func(l cellmon.Listener) {
		l.OnPreRun(cellmon.PreRunEvent{
			Source:         source,
			ExecutionCount: count,
			StartedAt:      start,
		})
	})

	lastLine, runErr := r.runProcess(ctx, source)

	post := cellmon.PostRunEvent{
		Source:         source,
		ExecutionCount: count,
		Duration:       time.Since(start),
		Status:         cellmon.StatusOK,
		Result:         lastLine,
	}
	if runErr != nil {
		post.Status = cellmon.StatusError
		post.Err = runErr
	}
	r.emit(func(l cellmon.Listener) {
		l.OnPostRun(post)
	})
	return runErr
}

// runProcess starts the interpreter, streams both pipes, and waits for exit.
// Returns the last non-empty stdout line (the cell's result preview) and the
// process error.
func (r *Runner) runProcess(ctx context.Context, source string) (string, error) {
	argv := append(append([]string{}, r.interpreter...), source)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", err
	}
	if err := cmd.Start(); err != nil {
		return "", err
	}

	var (
		wg       sync.WaitGroup
		lastMu   sync.Mutex
		lastLine string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.drain(stdout, cellmon.StreamStdout, func(line string) {
			if strings.TrimSpace(line) != "" {
				lastMu.Lock()
				lastLine = line
				lastMu.Unlock()
			}
		})
	}()
	go func() {
		defer wg.Done()
		r.drain(stderr, cellmon.StreamStderr, nil)
	}()
	wg.Wait()

	waitErr := cmd.Wait()
	lastMu.Lock()
	defer lastMu.Unlock()
	return lastLine, waitErr
}

// drain reads pipe line by line, emitting each line as an output event and
// passing it to onLine when set. If scanning fails (for example a line over
// maxLineBytes), the rest of the pipe is consumed so the subprocess can keep
// writing, and the failure is surfaced as an output event on the same stream.
func (r *Runner) drain(pipe io.Reader, stream cellmon.Stream, onLine func(string)) {
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		if onLine != nil {
			onLine(line)
		}
		r.emit(func(l cellmon.Listener) {
			l.OnOutput(cellmon.OutputEvent{Text: line + "\n", Stream: stream})
		})
	}
	if err := scanner.Err(); err != nil {
		io.Copy(io.Discard, pipe)
		r.emit(func(l cellmon.Listener) {
			l.OnOutput(cellmon.OutputEvent{
				Text:   fmt.Sprintf("[%s truncated: %v]\n", stream, err),
				Stream: stream,
			})
		})
	}
}

// emit delivers one event to the current listener, if any. The emit mutex
// serializes delivery across the stdout and stderr drain goroutines.
func (r *Runner) emit(deliver func(cellmon.Listener)) {
	r.listenerMu.Lock()
	l := r.listener
	r.listenerMu.Unlock()
	if l == nil {
		return
	}
	r.emitMu.Lock()
	defer r.emitMu.Unlock()
	deliver(l)
}

// Compile-time check that Runner implements cellmon.Host.
var _ cellmon.Host = (*Runner)(nil)
