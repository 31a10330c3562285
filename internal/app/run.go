package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/gagather/internal/collect"
	"github.com/vk/gagather/internal/command"
	"github.com/vk/gagather/internal/config"
	"github.com/vk/gagather/internal/ctxlog"
	"github.com/vk/gagather/internal/record"
	"github.com/vk/gagather/internal/report"
)

// Run loads the suite, benchmarks every application in order and writes
// the combined records to the configured CSV file. Nothing is written when
// any step fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	start := time.Now()

	suite, err := a.loadSuite(ctx)
	if err != nil {
		return fmt.Errorf("failed to load suite: %w", err)
	}
	a.logger.Info("Suite loaded.",
		"applications", len(suite.Applications),
		"configs", len(suite.Configs),
		"executable", suite.Executable,
		"test_mode", a.runner.TestMode(),
	)

	var results []*record.Record
	for _, def := range suite.Applications {
		if err := a.reconfigure(ctx, suite, def); err != nil {
			return err
		}

		collector, err := newCollector(suite, def)
		if err != nil {
			return err
		}

		a.logger.Info("🚀 Benchmarking application.", "app", def.Name, "timeout", suite.TimeoutFor(def))
		err = collector.Run(ctx, a.runner, suite.Executable, collect.RunOptions{
			Timeout:    suite.TimeoutFor(def),
			Quiet:      a.config.Quiet,
			MaxRetries: a.config.MaxRetries,
		})
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		results = append(results, collector.Results()...)
	}

	if err := report.WriteFile(a.config.OutputPath, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	a.logger.Info("🏁 Results written.", "path", a.config.OutputPath, "records", len(results), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// reconfigure loads def's bitstream onto the device. A timed-out load is
// logged and otherwise ignored.
func (a *App) reconfigure(ctx context.Context, suite *config.Model, def *config.Application) error {
	if def.Bitstream == "" {
		a.logger.Debug("No bitstream for application, skipping reconfiguration.", "app", def.Name)
		return nil
	}

	cmd := append(append([]string(nil), suite.ReconfigureCommand...), def.Bitstream)
	ok, err := a.runner.Exec(ctx, cmd, command.Options{Quiet: a.config.Quiet})
	if err != nil {
		return fmt.Errorf("failed to reconfigure device for %s: %w", def.Name, err)
	}
	if !ok {
		a.logger.Warn("Device reconfiguration timed out, continuing.", "app", def.Name, "bitstream", def.Bitstream)
	}
	return nil
}
