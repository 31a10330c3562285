// Package cli turns the harness command line (an output CSV path, -t and the
// suite and logging flags) into an app.Config. Usage problems are reported as
// an ExitError carrying the process exit code.
package cli
