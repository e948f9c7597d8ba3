package hooks

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dataxcelerator/cellmon"
)

// Writer logs every phase event as a YAML block to an io.Writer. Events are
// logged in full - nothing is truncated - which makes the output useful for
// replaying what a session actually did.
type Writer struct {
	out   io.Writer
	clock func() time.Time
}

// NewWriter creates a Writer logging to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, clock: time.Now}
}

// header writes an event header with timestamp.
func (w *Writer) header(name string) {
	stamp := w.clock().Format("2006-01-02 15:04:05.000")
	fmt.Fprintf(w.out, "\n>>> [%s]: %s\n", name, stamp)
}

func (w *Writer) logYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(w.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(w.out, string(data))
}

// OnPreRun logs the pre-run event.
func (w *Writer) OnPreRun(event cellmon.PreRunEvent) {
	w.header("pre-run")
	w.logYAML(map[string]any{
		"execution_count": event.ExecutionCount,
		"source":          event.Source,
	})
}

// OnRealtime logs a real-time output event.
func (w *Writer) OnRealtime(event cellmon.OutputEvent) {
	w.header("realtime")
	w.logYAML(map[string]any{
		"stream": string(event.Stream),
		"text":   event.Text,
	})
}

// OnPostRun logs the post-run event.
func (w *Writer) OnPostRun(event cellmon.PostRunEvent) {
	w.header("post-run")
	fields := map[string]any{
		"execution_count": event.ExecutionCount,
		"status":          string(event.Status),
		"duration":        event.Duration.String(),
		"lines":           event.LineCount(),
	}
	if event.Err != nil {
		fields["error"] = event.Err.Error()
	}
	if event.Result != "" {
		fields["result"] = event.Result
	}
	w.logYAML(fields)
}

// Compile-time checks.
var (
	_ cellmon.PreRunHook   = (*Writer)(nil)
	_ cellmon.RealtimeHook = (*Writer)(nil)
	_ cellmon.PostRunHook  = (*Writer)(nil)
)
