package command

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gagather/internal/record"
)

func newTestRunner(out *bytes.Buffer, opts ...Option) *Runner {
	base := []Option{WithOutput(out), WithStderr(nil), WithColor(false)}
	return New(append(base, opts...)...)
}

func TestExecToDict_TestModeSubstitutesFakeCommand(t *testing.T) {
	// --- Arrange ---
	out := &bytes.Buffer{}
	r := newTestRunner(out, WithTestMode(true))

	// --- Act ---
	rec, err := r.ExecToDict(context.Background(), []string{"./graph_analytics", "g.b", "-bfs"}, Options{})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, map[string]record.Value{
		"hi":    record.Text("hello"),
		"bye":   record.Text("farewell"),
		"greet": record.Text("howdy"),
	}, rec.Map())
	assert.Equal(t, "Executing: ./graph_analytics g.b -bfs\n", out.String(), "the requested command is echoed, not the fake one")
}

func TestExec_ColorFollowsTerminalDetection(t *testing.T) {
	// --- Arrange ---
	// A pipe or buffer is not a terminal, so fatih/color starts with NoColor set.
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	out := &bytes.Buffer{}
	r := New(WithOutput(out), WithStderr(nil), WithTestMode(true), WithColor(true))

	// --- Act ---
	ok, err := r.Exec(context.Background(), []string{"fpgaconf", "bfs.gbs"}, Options{})

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, out.String(), "\x1b[")
	assert.Equal(t, "Executing: fpgaconf bfs.gbs\n", out.String())
}

func TestExecToDict_ParsesNumbers(t *testing.T) {
	out := &bytes.Buffer{}
	r := newTestRunner(out)

	rec, err := r.ExecToDict(context.Background(), []string{"printf", "time_ms:12.5\nmode:fast\n"}, Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{"time_ms", "mode"}, rec.Keys())
	v, _ := rec.Get("time_ms")
	assert.Equal(t, record.Number(12.5), v)
}

func TestExecToDict_Quiet(t *testing.T) {
	out := &bytes.Buffer{}
	r := newTestRunner(out, WithTestMode(true))

	_, err := r.ExecToDict(context.Background(), []string{"anything"}, Options{Quiet: true})

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestExecToDict_Timeout(t *testing.T) {
	out := &bytes.Buffer{}
	r := newTestRunner(out)

	start := time.Now()
	rec, err := r.ExecToDict(context.Background(), []string{"sleep", "5"}, Options{Timeout: 50 * time.Millisecond, Quiet: true})

	require.ErrorIs(t, err, ErrTimeout)
	assert.Nil(t, rec)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecToDict_MalformedOutput(t *testing.T) {
	out := &bytes.Buffer{}
	r := newTestRunner(out)

	_, err := r.ExecToDict(context.Background(), []string{"printf", "no colon here\n"}, Options{Quiet: true})

	require.ErrorIs(t, err, record.ErrMalformedLine)
}

func TestExec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ok, err := newTestRunner(&bytes.Buffer{}).Exec(context.Background(), []string{"true"}, Options{Quiet: true})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("timeout returns false", func(t *testing.T) {
		ok, err := newTestRunner(&bytes.Buffer{}).Exec(context.Background(), []string{"sleep", "5"}, Options{Timeout: 50 * time.Millisecond, Quiet: true})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		ok, err := newTestRunner(&bytes.Buffer{}).Exec(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 3"}, Options{Quiet: true})
		require.Error(t, err)
		assert.False(t, ok)

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.Code)
		assert.Contains(t, exitErr.Error(), "boom")
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		_, err := newTestRunner(&bytes.Buffer{}).Exec(context.Background(), []string{"/definitely/not/here"}, Options{Quiet: true})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrTimeout)
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := newTestRunner(&bytes.Buffer{}).Exec(context.Background(), nil, Options{Quiet: true})
		require.Error(t, err)
	})
}

func TestExec_ParentCancellationIsNotATimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := newTestRunner(&bytes.Buffer{}).Exec(ctx, []string{"sleep", "5"}, Options{Quiet: true})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWithFakeCommand(t *testing.T) {
	r := newTestRunner(&bytes.Buffer{}, WithTestMode(true), WithFakeCommand([]string{"printf", "k:1"}))

	rec, err := r.ExecToDict(context.Background(), []string{"ignored"}, Options{Quiet: true})

	require.NoError(t, err)
	v, _ := rec.Get("k")
	assert.Equal(t, record.Number(1), v)
	assert.True(t, r.TestMode())
}
