package local

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dataxcelerator/cellmon"
	"github.com/Dataxcelerator/cellmon/hooks"
)

func newShellRunner() *Runner {
	return NewRunner(WithInterpreter([]string{"sh", "-c"}))
}

func TestRunEmitsFullLifecycle(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	err := r.Run(context.Background(), "printf 'hello\\nworld\\n'")
	require.NoError(t, err)

	events := rec.Events()
	require.GreaterOrEqual(t, len(events), 4)

	pre, ok := events[0].(cellmon.PreRunEvent)
	require.True(t, ok, "first event must be pre-run")
	assert.Equal(t, "printf 'hello\\nworld\\n'", pre.Source)
	assert.Equal(t, 1, pre.ExecutionCount)

	post, ok := events[len(events)-1].(cellmon.PostRunEvent)
	require.True(t, ok, "last event must be post-run")
	assert.Equal(t, cellmon.StatusOK, post.Status)
	assert.NoError(t, post.Err)
	assert.Equal(t, "world", post.Result)
	assert.Greater(t, post.Duration.Nanoseconds(), int64(0))

	outs := rec.Outputs()
	require.Len(t, outs, 2)
	assert.Equal(t, "hello\n", outs[0].Text)
	assert.Equal(t, "world\n", outs[1].Text)
	assert.Equal(t, cellmon.StreamStdout, outs[0].Stream)
}

func TestRunFailureReportedInPostRun(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	err := r.Run(context.Background(), "exit 3")
	require.Error(t, err)

	events := rec.Events()
	post, ok := events[len(events)-1].(cellmon.PostRunEvent)
	require.True(t, ok)
	assert.Equal(t, cellmon.StatusError, post.Status)
	assert.Error(t, post.Err)
}

func TestRunStderrStream(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	require.NoError(t, r.Run(context.Background(), "echo oops 1>&2"))

	outs := rec.Outputs()
	require.Len(t, outs, 1)
	assert.Equal(t, "oops\n", outs[0].Text)
	assert.Equal(t, cellmon.StreamStderr, outs[0].Stream)
}

func TestRunDeliversLargeSingleLine(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	// One line well past bufio.Scanner's 64KB default token limit.
	const n = 100_000
	err := r.Run(context.Background(), "head -c 100000 /dev/zero | tr '\\0' 'a'; echo")
	require.NoError(t, err)

	outs := rec.Outputs()
	require.Len(t, outs, 1)
	assert.Len(t, outs[0].Text, n+1)

	post, ok := rec.Events()[len(rec.Events())-1].(cellmon.PostRunEvent)
	require.True(t, ok, "post-run event must still be emitted")
	assert.Equal(t, cellmon.StatusOK, post.Status)
}

func TestRunOversizeLineTruncatedNotDeadlocked(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	// A single line beyond maxLineBytes: the cell must still complete, with
	// the truncation reported and the post-run event delivered.
	err := r.Run(context.Background(), "head -c 2000000 /dev/zero | tr '\\0' 'a'; echo")
	require.NoError(t, err)

	events := rec.Events()
	require.NotEmpty(t, events)
	post, ok := events[len(events)-1].(cellmon.PostRunEvent)
	require.True(t, ok, "post-run event must still be emitted")
	assert.Equal(t, cellmon.StatusOK, post.Status)

	var truncated bool
	for _, out := range rec.Outputs() {
		if strings.Contains(out.Text, "stdout truncated") {
			truncated = true
		}
	}
	assert.True(t, truncated, "oversize output must be surfaced, not dropped")
}

func TestExecutionCountIncrements(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))

	require.NoError(t, r.Run(context.Background(), "true"))
	require.NoError(t, r.Run(context.Background(), "true"))

	var counts []int
	for _, e := range rec.Events() {
		if pre, ok := e.(cellmon.PreRunEvent); ok {
			counts = append(counts, pre.ExecutionCount)
		}
	}
	assert.Equal(t, []int{1, 2}, counts)
}

func TestNoListenerStillRuns(t *testing.T) {
	r := newShellRunner()
	assert.NoError(t, r.Run(context.Background(), "echo quiet"))
}

func TestSetListenerNilDetaches(t *testing.T) {
	r := newShellRunner()
	rec := hooks.NewRecorder()
	require.NoError(t, r.SetListener(rec))
	require.NoError(t, r.SetListener(nil))

	require.NoError(t, r.Run(context.Background(), "echo gone"))
	assert.Empty(t, rec.Events())
}
