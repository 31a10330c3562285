package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/vk/gagather/internal/ctxlog"
	"github.com/vk/gagather/internal/record"
)

// DefaultTimeout bounds a command when Options.Timeout is left at zero.
const DefaultTimeout = 60 * time.Second

// waitDelay bounds how long Wait drains pipes after a timed-out process has
// been killed, in case a grandchild still holds them open.
const waitDelay = 2 * time.Second

// DefaultFakeCommand is what a test-mode Runner executes instead of the
// requested command.
var DefaultFakeCommand = []string{"printf", "hi:hello\nbye:farewell\ngreet:howdy"}

// Options controls a single invocation.
type Options struct {
	Timeout time.Duration
	Quiet   bool
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// Runner executes external commands one at a time.
type Runner struct {
	testMode bool
	fake     []string
	out      io.Writer
	stderr   io.Writer
	echo     *color.Color
}

// Option configures a Runner.
type Option func(*Runner)

// WithTestMode makes the Runner execute the fake command in place of every
// requested command.
func WithTestMode(enabled bool) Option {
	return func(r *Runner) { r.testMode = enabled }
}

// WithFakeCommand replaces the command run in test mode.
func WithFakeCommand(cmd []string) Option {
	return func(r *Runner) { r.fake = append([]string(nil), cmd...) }
}

// WithOutput sets where "Executing:" progress lines are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithStderr sets where the child's stderr is copied. A nil writer discards it.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}

// WithColor(false) turns colouring of progress lines off. With true, colour
// is still only used when stdout is a terminal.
func WithColor(enabled bool) Option {
	return func(r *Runner) {
		if !enabled {
			r.echo.DisableColor()
		}
	}
}

// New creates a Runner. Without options it runs real commands, echoes to
// os.Stdout and forwards the child's stderr to os.Stderr.
func New(opts ...Option) *Runner {
	r := &Runner{
		fake:   DefaultFakeCommand,
		out:    os.Stdout,
		stderr: os.Stderr,
		echo:   color.New(color.FgHiBlue),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TestMode reports whether the Runner substitutes the fake command.
func (r *Runner) TestMode() bool {
	return r.testMode
}

// Exec runs cmd for its side effects. It returns false when the timeout
// expired and true when the process completed successfully. A non-zero exit
// is reported as an *ExitError.
func (r *Runner) Exec(ctx context.Context, cmd []string, opts Options) (bool, error) {
	if _, err := r.run(ctx, cmd, opts); err != nil {
		if errors.Is(err, ErrTimeout) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ExecToDict runs cmd and parses its stdout with record.ParseOutput. It
// returns ErrTimeout when the process outlives the timeout.
func (r *Runner) ExecToDict(ctx context.Context, cmd []string, opts Options) (*record.Record, error) {
	stdout, err := r.run(ctx, cmd, opts)
	if err != nil {
		return nil, err
	}
	rec, err := record.ParseOutput(string(stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to parse output of %q: %w", strings.Join(cmd, " "), err)
	}
	return rec, nil
}

// run launches one subprocess and waits for it, capturing stdout.
func (r *Runner) run(ctx context.Context, cmd []string, opts Options) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)

	if !opts.Quiet {
		// os.Stdout is unbuffered, so the line shows up before the child starts.
		r.echo.Fprintln(r.out, "Executing:", strings.Join(cmd, " "))
	}

	argv := cmd
	if r.testMode {
		argv = r.fake
	}
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	timeout := opts.timeout()
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	proc := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	proc.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	if r.stderr != nil {
		proc.Stderr = io.MultiWriter(&stderr, r.stderr)
	} else {
		proc.Stderr = &stderr
	}

	logger.Debug("Starting subprocess.", "argv", argv, "timeout", timeout, "test_mode", r.testMode)
	start := time.Now()
	err := proc.Run()
	elapsed := time.Since(start)

	if err != nil {
		// The parent context takes precedence: a cancelled run is not a timeout.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("command %q aborted: %w", strings.Join(cmd, " "), ctxErr)
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			logger.Warn("Subprocess timed out.", "argv", argv, "timeout", timeout)
			return nil, ErrTimeout
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{Command: argv, Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return nil, fmt.Errorf("failed to run %q: %w", strings.Join(argv, " "), err)
	}

	logger.Debug("Subprocess finished.", "argv", argv, "elapsed", elapsed, "stdout_bytes", stdout.Len())
	return stdout.Bytes(), nil
}
