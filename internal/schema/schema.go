// Package schema holds the HCL decoding targets for suite files.
package schema

import "github.com/hashicorp/hcl/v2"

// InfoBlock is the free-form `info` block of a config. Its attributes are
// read in declaration order.
type InfoBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Config represents a `config` block: one processor setup.
type Config struct {
	Name    string     `hcl:"name,label"`
	Options []string   `hcl:"options,optional"`
	Info    *InfoBlock `hcl:"info,block"`
}

// Application represents an `application` block.
type Application struct {
	Name      string   `hcl:"name,label"`
	Flag      string   `hcl:"flag"`
	GraphDir  string   `hcl:"graph_dir,optional"`
	Graphs    []string `hcl:"graphs"`
	Bitstream string   `hcl:"bitstream,optional"`
	Configs   []string `hcl:"configs"`
	Prune     []string `hcl:"prune,optional"`
	Timeout   *string  `hcl:"timeout,optional"`
}

// SuiteFile is the top-level structure of a suite file. Top-level settings
// are optional so that a suite can be split across several files.
type SuiteFile struct {
	Executable         *string        `hcl:"executable,optional"`
	Timeout            *string        `hcl:"timeout,optional"`
	ReconfigureCommand *[]string      `hcl:"reconfigure_command,optional"`
	Configs            []*Config      `hcl:"config,block"`
	Applications       []*Application `hcl:"application,block"`
}
