package printer

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlain(out *bytes.Buffer, opts ...Option) *Printer {
	return New(out, append([]Option{WithColors(false)}, opts...)...)
}

func TestPreRunPlain(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out)

	p.PreRun("x = 1\ny = x + 1\n")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "── pre-run "))
	assert.Equal(t, "[ 1] x = 1", lines[1])
	assert.Equal(t, "[ 2] y = x + 1", lines[2])
}

func TestChunkPlain(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out)

	p.Chunk("hello\n")
	assert.Equal(t, "hello\n", out.String())

	out.Reset()
	p.Chunk("no newline")
	assert.Equal(t, "no newline\n", out.String())

	out.Reset()
	p.Chunk("")
	assert.Empty(t, out.String())
}

func TestLineTimestamped(t *testing.T) {
	out := &bytes.Buffer{}
	clock := NewFixedClock(time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC))
	p := newPlain(out, WithClock(clock))

	p.Line("hi")
	assert.Equal(t, "[12:30:00] hi\n", out.String())
}

func TestSummaryPlain(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out)

	p.Summary("ok", 1234*time.Millisecond, 2, "42")

	s := out.String()
	assert.Contains(t, s, "── post-run ")
	assert.Contains(t, s, "status: ok\n")
	assert.Contains(t, s, "duration: 1.234s\n")
	assert.Contains(t, s, "lines: 2\n")
	assert.Contains(t, s, "result: 42\n")
}

func TestSummaryOmitsEmptyResult(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out)

	p.Summary("ok", time.Second, 1, "")
	assert.NotContains(t, out.String(), "result:")
}

func TestSummaryTruncatesResult(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out, WithResultCap(10))

	p.Summary("ok", time.Second, 1, strings.Repeat("a", 50))
	assert.Contains(t, out.String(), "result: "+strings.Repeat("a", 10)+"...")
	assert.NotContains(t, out.String(), strings.Repeat("a", 11))
}

func TestSummaryTruncatesOnRuneBoundary(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out, WithResultCap(9))

	// "é" is two bytes; a cap of 9 lands mid-rune and must back up to 8.
	p.Summary("ok", time.Second, 1, strings.Repeat("é", 20))

	s := out.String()
	assert.True(t, utf8.ValidString(s))
	assert.Contains(t, s, "result: "+strings.Repeat("é", 4)+"...")
}

func TestWarningGoesToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	warn := &bytes.Buffer{}
	p := New(out, WithColors(false), WithErrWriter(warn))

	p.Warningf("hook %s failed", "pre-run")
	assert.Empty(t, out.String())
	assert.Equal(t, "warning: hook pre-run failed\n", warn.String())
}

func TestColorsEmitANSI(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, WithColors(true))

	p.Chunk("hello\n")
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "hello")
}

func TestDetectColorNonFile(t *testing.T) {
	assert.False(t, DetectColor(&bytes.Buffer{}))
}

func TestActivationNotices(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPlain(out)

	p.Activated(true)
	p.Deactivated()
	assert.Contains(t, out.String(), "cell monitor activated (debug)\n")
	assert.Contains(t, out.String(), "cell monitor deactivated\n")
}
