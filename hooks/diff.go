package hooks

import (
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Dataxcelerator/cellmon"
)

// Diff remembers the last executed cell source and, when a subsequent cell's
// source differs, writes a unified diff of the change before the cell runs.
// Useful in a live session to see exactly what was edited between runs.
type Diff struct {
	out  io.Writer
	prev string
	seen bool
}

// NewDiff creates a Diff writing to out.
func NewDiff(out io.Writer) *Diff {
	return &Diff{out: out}
}

// OnPreRun compares the incoming source against the previous cell's source
// and prints a unified diff when they differ.
func (d *Diff) OnPreRun(event cellmon.PreRunEvent) {
	defer func() {
		d.prev = event.Source
		d.seen = true
	}()

	if !d.seen || d.prev == event.Source {
		return
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(d.prev),
		B:        difflib.SplitLines(event.Source),
		FromFile: "previous",
		ToFile:   "current",
		Context:  3,
	})
	if err != nil {
		fmt.Fprintf(d.out, "(diff failed: %v)\n", err)
		return
	}
	fmt.Fprint(d.out, text)
}

// Compile-time check.
var _ cellmon.PreRunHook = (*Diff)(nil)
