package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned for an output line that carries no colon.
var ErrMalformedLine = errors.New("malformed output line")

// ParseLine splits a `key:value` line on its first colon. Surrounding
// whitespace of the line is discarded before splitting.
func ParseLine(line string) (string, Value, error) {
	key, raw, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return "", Value{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return key, ParseValue(raw), nil
}

// ParseOutput parses newline separated `key:value` text into a Record.
// Blank lines are skipped; when a key repeats, the last value wins.
func ParseOutput(text string) (*Record, error) {
	rec := New()
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, val, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rec.Set(key, val)
	}
	return rec, nil
}
