// Package command runs external processes on behalf of the harness. A Runner
// launches one subprocess at a time, bounds it with a timeout, echoes the
// invoked command line for progress tracking, and can parse the process's
// `key:value` stdout into a record.Record.
//
// A Runner built in test mode substitutes a fixed fake command for every
// requested one, which lets the whole harness be exercised without touching
// real hardware.
package command
