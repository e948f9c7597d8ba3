// Package printer renders the monitor's default colored output: blue pre-run
// source listings, green real-time output, yellow post-run summaries, and red
// warnings. When colors are disabled (or the output is not a terminal) every
// method degrades to the same text without styling.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

const dividerWidth = 60

// resultCapDefault is the maximum result preview length in a summary.
const resultCapDefault = 200

// Printer writes phase output for cell executions.
type Printer struct {
	out       io.Writer
	errOut    io.Writer
	colors    bool
	clock     Clock
	resultCap int
	styles    styles
}

// Option configures a Printer.
type Option func(*Printer)

// WithColors forces colored output on or off, overriding detection.
func WithColors(enabled bool) Option {
	return func(p *Printer) { p.colors = enabled }
}

// WithErrWriter sets the writer used for warnings. Defaults to the main
// output writer.
func WithErrWriter(w io.Writer) Option {
	return func(p *Printer) { p.errOut = w }
}

// WithClock sets the clock used for real-time timestamps. Defaults to the
// system clock.
func WithClock(c Clock) Option {
	return func(p *Printer) { p.clock = c }
}

// WithResultCap sets the maximum length of the result preview in summaries.
func WithResultCap(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.resultCap = n
		}
	}
}

// New creates a Printer writing to out. Colors default to on when out is a
// terminal.
func New(out io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:       out,
		errOut:    out,
		colors:    DetectColor(out),
		clock:     systemClock{},
		resultCap: resultCapDefault,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.styles = newStyles(p.out, p.colors)
	return p
}

// DetectColor reports whether w is a terminal capable of color output.
func DetectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorsEnabled reports whether the printer styles its output.
func (p *Printer) ColorsEnabled() bool {
	return p.colors
}

// PreRun prints the cell source in blue with numbered lines, framed by a
// labeled divider.
func (p *Printer) PreRun(source string) {
	p.divider(p.styles.preRun, "pre-run")
	for i, line := range sourceLines(source) {
		fmt.Fprintln(p.out, p.styles.preRun.render(fmt.Sprintf("[%2d] %s", i+1, line)))
	}
}

// Chunk prints one real-time output chunk in green, as delivered. A missing
// trailing newline is added so chunks never run together.
func (p *Printer) Chunk(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(p.out, p.styles.realtime.render(strings.TrimSuffix(text, "\n"))+"\n")
}

// Line prints one real-time output line in green with a timestamp prefix.
// Used in debug mode where chunks are surfaced per line.
func (p *Printer) Line(text string) {
	stamp := p.clock.Now().Format("15:04:05")
	fmt.Fprintln(p.out, p.styles.realtime.render(fmt.Sprintf("[%s] %s", stamp, text)))
}

// Summary prints the post-run summary in yellow: status, duration, source
// line count, and a truncated result preview when one exists.
func (p *Printer) Summary(status string, duration time.Duration, lines int, result string) {
	p.divider(p.styles.postRun, "post-run")
	fmt.Fprintln(p.out, p.styles.postRun.render(fmt.Sprintf("status: %s", status)))
	fmt.Fprintln(p.out, p.styles.postRun.render(fmt.Sprintf("duration: %.3fs", duration.Seconds())))
	fmt.Fprintln(p.out, p.styles.postRun.render(fmt.Sprintf("lines: %d", lines)))
	if result != "" {
		if len(result) > p.resultCap {
			// Back up to a rune boundary so the preview stays valid UTF-8.
			cut := p.resultCap
			for cut > 0 && !utf8.RuneStart(result[cut]) {
				cut--
			}
			result = result[:cut] + "..."
		}
		fmt.Fprintln(p.out, p.styles.postRun.render(fmt.Sprintf("result: %s", result)))
	}
}

// Warningf prints a red warning line to the error writer.
func (p *Printer) Warningf(format string, args ...any) {
	fmt.Fprintln(p.errOut, p.styles.warning.render("warning: "+fmt.Sprintf(format, args...)))
}

// Activated prints the monitor activation notice.
func (p *Printer) Activated(debug bool) {
	msg := "cell monitor activated"
	if debug {
		msg += " (debug)"
	}
	fmt.Fprintln(p.out, p.styles.notice.render(msg))
}

// Deactivated prints the monitor deactivation notice.
func (p *Printer) Deactivated() {
	fmt.Fprintln(p.out, p.styles.notice.render("cell monitor deactivated"))
}

// divider writes a labeled horizontal rule, e.g. "── pre-run ─────".
func (p *Printer) divider(s phaseStyle, label string) {
	head := strings.Repeat("─", 2) + " " + label + " "
	fill := dividerWidth - len([]rune(head))
	if fill < 0 {
		fill = 0
	}
	fmt.Fprintln(p.out, s.render(head+strings.Repeat("─", fill)))
}

// sourceLines splits cell source into display lines, dropping the trailing
// newline so an ordinary cell does not render a phantom empty line.
func sourceLines(source string) []string {
	return strings.Split(strings.TrimRight(source, "\n"), "\n")
}
