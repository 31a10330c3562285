package app

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/vk/gagather/internal/collect"
	"github.com/vk/gagather/internal/config"
)

//go:embed default_suite.hcl
var defaultSuite []byte

// loadSuite returns the suite named by the configuration, or the built-in
// one when no suite path was given.
func (a *App) loadSuite(ctx context.Context) (*config.Model, error) {
	if len(a.config.SuitePaths) == 0 {
		a.logger.Debug("Using built-in suite.")
		return a.loader.Parse(ctx, "default_suite.hcl", defaultSuite)
	}
	a.logger.Debug("Loading suite.", "paths", a.config.SuitePaths)
	return a.loader.Load(ctx, a.config.SuitePaths...)
}

// newCollector turns one application definition into a ready Collector.
func newCollector(suite *config.Model, def *config.Application) (*collect.Collector, error) {
	c := collect.NewCollector(def.Name, def.Flag, def.GraphDir, def.Graphs)
	for _, name := range def.Configs {
		cfg, ok := suite.Configs[name]
		if !ok {
			return nil, fmt.Errorf("application %q references unknown config %q", def.Name, name)
		}
		c.AddConfig(collect.NewConfig(cfg.Options, cfg.Info))
	}
	if len(def.Prune) > 0 {
		c.SetResultPruneFn(collect.PruneKeys(def.Prune...))
	}
	return c, nil
}
