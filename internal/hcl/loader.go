package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gagather/internal/config"
	"github.com/vk/gagather/internal/ctxlog"
	"github.com/vk/gagather/internal/fsutil"
	"github.com/vk/gagather/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL suite loader that evaluates `env.*` against
// the process environment.
func NewLoader() *Loader {
	return &Loader{environ: processEnviron}
}

// NewLoaderWithEnv creates a loader that sees only the given KEY=VALUE pairs.
func NewLoaderWithEnv(environ []string) *Loader {
	env := append([]string(nil), environ...)
	return &Loader{environ: func() []string { return env }}
}

// Load parses every .hcl file found under paths, merges them in order, and
// validates the result.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl suite files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())
	model := config.NewModel()

	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, file, f, evalCtx); err != nil {
			return nil, err
		}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	logger.Debug("HCL loading complete.", "configs", len(model.Configs), "applications", len(model.Applications))
	return model, nil
}

// Parse decodes a single suite held in memory.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	model := config.NewModel()
	if err := l.decodeInto(ctx, model, filename, f, newEvalContext(l.environ())); err != nil {
		return nil, err
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return model, nil
}

func (l *Loader) decodeInto(ctx context.Context, model *config.Model, filename string, f *hcl.File, evalCtx *hcl.EvalContext) error {
	var root schema.SuiteFile
	if diags := gohcl.DecodeBody(f.Body, evalCtx, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if err := l.translateSuite(ctx, model, &root, evalCtx); err != nil {
		return fmt.Errorf("in %s: %w", filename, err)
	}
	return nil
}

// findAllHCLFiles walks all given paths and returns a flat, de-duplicated
// list of .hcl files. Unlike grid discovery, a missing path is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing suite path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("suite file %s must have a .hcl extension", path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
