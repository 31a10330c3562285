package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/gagather/internal/record"
)

var (
	// ErrNoRecords is returned when there is nothing to write.
	ErrNoRecords = errors.New("no records to write")
	// ErrUnexpectedField is returned when a record has a key missing from the header.
	ErrUnexpectedField = errors.New("record has field not present in header")
)

// WriteCSV writes records to w. A key absent from a later record yields an
// empty cell; a key the header does not know about is an error.
func WriteCSV(w io.Writer, records []*record.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	header := records[0].Keys()
	columns := make(map[string]struct{}, len(header))
	for _, k := range header {
		columns[k] = struct{}{}
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for i, rec := range records {
		for _, k := range rec.Keys() {
			if _, ok := columns[k]; !ok {
				return fmt.Errorf("%w: row %d, field %q", ErrUnexpectedField, i+1, k)
			}
		}
		for j, k := range header {
			row[j] = ""
			if v, ok := rec.Get(k); ok {
				row[j] = v.String()
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to path as CSV. With no records, no file is created.
func WriteFile(path string, records []*record.Record) (err error) {
	if len(records) == 0 {
		return ErrNoRecords
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := WriteCSV(f, records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
