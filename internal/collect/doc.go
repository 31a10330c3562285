// Package collect drives one application of a benchmark suite across its
// graphs and processor configurations.
//
// A Collector cross-products graphs × configurations (graph-major,
// configuration-minor), invokes an Executor for each pair, retries on
// timeout, prunes and merges the parsed output with identifying fields and
// configuration metadata, and accumulates the resulting records.
package collect
