// Package record defines the data produced by a single benchmark execution:
// a two-variant Value (number or text), an insertion-ordered Record of named
// values, and the parser that turns an executable's `key:value` stdout into
// a Record.
package record
