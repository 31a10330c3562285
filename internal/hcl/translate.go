// This file translates decoded HCL schema structs into the format-agnostic
// config model.

package hcl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/gagather/internal/config"
	"github.com/vk/gagather/internal/ctxlog"
	"github.com/vk/gagather/internal/record"
	"github.com/vk/gagather/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateSuite merges one decoded file into model. Top-level settings
// from later files override earlier ones.
func (l *Loader) translateSuite(ctx context.Context, model *config.Model, s *schema.SuiteFile, evalCtx *hcl.EvalContext) error {
	logger := ctxlog.FromContext(ctx)

	if s.Executable != nil {
		model.Executable = *s.Executable
	}
	if s.Timeout != nil {
		d, err := parseTimeout(*s.Timeout)
		if err != nil {
			return fmt.Errorf("suite timeout: %w", err)
		}
		model.Timeout = d
	}
	if s.ReconfigureCommand != nil {
		model.ReconfigureCommand = append([]string(nil), (*s.ReconfigureCommand)...)
	}

	for _, c := range s.Configs {
		if _, exists := model.Configs[c.Name]; exists {
			return fmt.Errorf("config %q is defined more than once", c.Name)
		}
		def, err := translateConfig(c, evalCtx)
		if err != nil {
			return err
		}
		model.Configs[def.Name] = def
		logger.Debug("Config translated.", "config", def.Name, "options", def.Options)
	}

	for _, a := range s.Applications {
		app, err := translateApplication(a)
		if err != nil {
			return err
		}
		model.Applications = append(model.Applications, app)
		logger.Debug("Application translated.", "application", app.Name, "graphs", len(app.Graphs))
	}
	return nil
}

func translateConfig(c *schema.Config, evalCtx *hcl.EvalContext) (*config.ConfigDefinition, error) {
	info, err := translateInfo(c.Info, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", c.Name, err)
	}
	return &config.ConfigDefinition{
		Name:    c.Name,
		Options: append([]string(nil), c.Options...),
		Info:    info,
	}, nil
}

func translateApplication(a *schema.Application) (*config.Application, error) {
	app := &config.Application{
		Name:      a.Name,
		Flag:      a.Flag,
		GraphDir:  a.GraphDir,
		Graphs:    append([]string(nil), a.Graphs...),
		Bitstream: a.Bitstream,
		Configs:   append([]string(nil), a.Configs...),
		Prune:     append([]string(nil), a.Prune...),
	}
	if a.Timeout != nil {
		d, err := parseTimeout(*a.Timeout)
		if err != nil {
			return nil, fmt.Errorf("application %q timeout: %w", a.Name, err)
		}
		app.Timeout = d
	}
	return app, nil
}

// translateInfo evaluates the attributes of an info block in declaration
// order. Numbers stay numeric; everything else is converted to a string.
func translateInfo(block *schema.InfoBlock, evalCtx *hcl.EvalContext) (*record.Record, error) {
	info := record.New()
	if block == nil || block.Body == nil {
		return info, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid info block: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("info %q: %w", attr.Name, diags)
		}
		v, err := ctyToValue(val)
		if err != nil {
			return nil, fmt.Errorf("info %q: %w", attr.Name, err)
		}
		info.Set(attr.Name, v)
	}
	return info, nil
}

func ctyToValue(val cty.Value) (record.Value, error) {
	if val.IsNull() {
		return record.Value{}, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return record.Value{}, fmt.Errorf("value must be known")
	}
	if val.Type() == cty.Number {
		f, _ := val.AsBigFloat().Float64()
		return record.Number(f), nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return record.Value{}, fmt.Errorf("cannot use %s as info value: %w", val.Type().FriendlyName(), err)
	}
	return record.Text(str.AsString()), nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
