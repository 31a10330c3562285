package collect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vk/gagather/internal/command"
	"github.com/vk/gagather/internal/ctxlog"
	"github.com/vk/gagather/internal/record"
)

// ErrRetriesExhausted is returned when a pair keeps timing out past
// RunOptions.MaxRetries.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Executor runs a command and parses its output. It returns
// command.ErrTimeout when the command outlives its timeout.
type Executor interface {
	ExecToDict(ctx context.Context, cmd []string, opts command.Options) (*record.Record, error)
}

// RunOptions controls Collector.Run.
type RunOptions struct {
	Timeout time.Duration
	Quiet   bool
	// MaxRetries caps the retries after a timeout; 0 retries forever.
	MaxRetries int
}

// Collector accumulates run records for one application.
type Collector struct {
	app      string
	appFlag  string
	graphDir string
	graphs   []string
	configs  []Config
	prune    PruneFunc
	records  []*record.Record
}

// NewCollector creates a Collector for app. Graph paths are formed by plain
// concatenation of graphDir and each graph name.
func NewCollector(app, appFlag, graphDir string, graphs []string) *Collector {
	return &Collector{
		app:      app,
		appFlag:  appFlag,
		graphDir: graphDir,
		graphs:   append([]string(nil), graphs...),
	}
}

// App returns the application name.
func (c *Collector) App() string { return c.app }

// AddConfig appends one configuration.
func (c *Collector) AddConfig(cfg Config) {
	c.configs = append(c.configs, cfg)
}

// AddConfigs appends configurations in order.
func (c *Collector) AddConfigs(cfgs ...Config) {
	c.configs = append(c.configs, cfgs...)
}

// SetResultPruneFn installs fn, applied to every parsed result before merging.
func (c *Collector) SetResultPruneFn(fn PruneFunc) {
	c.prune = fn
}

// Results returns the accumulated records. The slice is not copied and
// callers should not mutate the records.
func (c *Collector) Results() []*record.Record {
	return c.records
}

// Command builds the argument vector for one (graph, configuration) pair.
func (c *Collector) Command(executable, graph string, cfg Config) []string {
	cmd := []string{executable, c.graphDir + graph, c.appFlag}
	return append(cmd, cfg.options...)
}

// Run executes every graph against every configuration and appends one
// record per pair.
func (c *Collector) Run(ctx context.Context, exec Executor, executable string, opts RunOptions) error {
	ctx = ctxlog.With(ctx, "app", c.app)
	logger := ctxlog.FromContext(ctx)
	logger.Info("Collector started.", "graphs", len(c.graphs), "configs", len(c.configs))

	for _, graph := range c.graphs {
		for _, cfg := range c.configs {
			cmd := c.Command(executable, graph, cfg)

			result, err := c.execWithRetry(ctx, exec, cmd, opts)
			if err != nil {
				return fmt.Errorf("app %s, graph %s: %w", c.app, graph, err)
			}

			if c.prune != nil {
				c.prune(result)
			}

			ident := record.New()
			ident.Set("app", record.Text(c.app))
			ident.Set("graph", record.Text(graph))
			ident.Set("command", record.Text(strings.Join(cmd, " ")))

			c.records = append(c.records, record.Merge(ident, cfg.info, result))
			logger.Debug("Run record collected.", "graph", graph, "fields", result.Len())
		}
	}

	logger.Info("Collector finished.", "records", len(c.records))
	return nil
}

// execWithRetry invokes exec until it returns something other than a
// timeout. There is no backoff between attempts.
func (c *Collector) execWithRetry(ctx context.Context, exec Executor, cmd []string, opts RunOptions) (*record.Record, error) {
	logger := ctxlog.FromContext(ctx)
	callOpts := command.Options{Timeout: opts.Timeout, Quiet: opts.Quiet}

	for retries := 0; ; retries++ {
		result, err := exec.ExecToDict(ctx, cmd, callOpts)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, command.ErrTimeout) {
			return nil, err
		}
		if opts.MaxRetries > 0 && retries >= opts.MaxRetries {
			return nil, fmt.Errorf("%w: timed out %d times", ErrRetriesExhausted, retries+1)
		}
		if !opts.Quiet {
			logger.Warn("Timed-out, retrying...", "attempt", retries+1)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}
