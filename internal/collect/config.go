package collect

import "github.com/vk/gagather/internal/record"

// Config pairs the command-line options for one processor setup with the
// descriptive metadata recorded alongside its results.
type Config struct {
	options []string
	info    *record.Record
}

// NewConfig copies options and info into an immutable Config.
func NewConfig(options []string, info *record.Record) Config {
	c := Config{options: append([]string(nil), options...)}
	if info != nil {
		c.info = info.Clone()
	} else {
		c.info = record.New()
	}
	return c
}

// Options returns a copy of the option tokens.
func (c Config) Options() []string {
	return append([]string(nil), c.options...)
}

// Info returns a copy of the metadata.
func (c Config) Info() *record.Record {
	if c.info == nil {
		return record.New()
	}
	return c.info.Clone()
}
