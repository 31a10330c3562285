// Package report serialises run records to CSV. The header row is the key
// order of the first record.
package report
