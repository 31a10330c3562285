package config

import (
	"time"

	"github.com/vk/gagather/internal/record"
)

// Defaults applied when a suite leaves the corresponding setting out.
const (
	DefaultExecutable = "./graph_analytics"
	DefaultTimeout    = 60 * time.Second
)

// DefaultReconfigureCommand loads a bitstream onto the accelerator; the
// bitstream path is appended as the last argument.
var DefaultReconfigureCommand = []string{"fpgaconf"}

// Model is the unified representation of a benchmark suite.
type Model struct {
	Executable         string
	Timeout            time.Duration
	ReconfigureCommand []string
	Configs            map[string]*ConfigDefinition
	Applications       []*Application
}

// ConfigDefinition is a named processor configuration.
type ConfigDefinition struct {
	Name    string
	Options []string
	Info    *record.Record
}

// Application describes one graph-analytics kernel and the inputs it is
// benchmarked against.
type Application struct {
	Name      string
	Flag      string
	GraphDir  string
	Graphs    []string
	Bitstream string
	Configs   []string
	Prune     []string
	// Timeout overrides Model.Timeout when non-zero.
	Timeout time.Duration
}

// NewModel returns an empty Model with defaults filled in.
func NewModel() *Model {
	return &Model{
		Executable:         DefaultExecutable,
		Timeout:            DefaultTimeout,
		ReconfigureCommand: append([]string(nil), DefaultReconfigureCommand...),
		Configs:            make(map[string]*ConfigDefinition),
	}
}

// TimeoutFor returns the per-invocation timeout for app.
func (m *Model) TimeoutFor(app *Application) time.Duration {
	if app.Timeout > 0 {
		return app.Timeout
	}
	return m.Timeout
}
