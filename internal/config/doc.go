// Package config defines the format-agnostic model of a benchmark suite:
// the executable to drive, the processor configurations, and the
// applications with their graphs and bitstreams. It also declares the Loader
// interface that concrete formats, such as HCL, implement.
//
// The `config.Model` is the single source of truth for the `app` package.
package config
