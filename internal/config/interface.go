package config

import "context"

// Loader is the interface for a format-specific suite loader.
type Loader interface {
	// Load reads suite definitions from the given files or directories and
	// merges them into a single validated Model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Parse reads a single in-memory suite definition.
	Parse(ctx context.Context, filename string, src []byte) (*Model, error)
}
