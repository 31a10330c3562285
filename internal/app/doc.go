// Package app contains the benchmark driver. It wires the suite loader, the
// command runner, the per-application collectors and the CSV report into a
// single linear run, decoupled from any specific entrypoint like a CLI.
package app
