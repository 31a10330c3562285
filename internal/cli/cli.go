package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gagather/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags may appear before or after the output path.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gagather", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gagather - Graph-analytics benchmark harness.

Usage:
  gagather [options] OUTPUT_CSV [-t]

Arguments:
  OUTPUT_CSV
    Path of the CSV file receiving one row per benchmark execution.

Options:
`)
		flagSet.PrintDefaults()
	}

	var suitePaths stringList
	testFlag := flagSet.Bool("t", false, "Test mode: run a fixed fake command instead of any real one.")
	flagSet.Var(&suitePaths, "suite", "Path to a suite .hcl file or directory (repeatable). Defaults to the built-in suite.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxRetriesFlag := flagSet.Int("max-retries", 0, "Maximum retries after a timed-out run. 0 retries forever.")
	quietFlag := flagSet.Bool("quiet", false, "Do not echo commands before running them.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored command echo.")

	var positional []string
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if flagSet.NArg() == 0 {
			break
		}
		positional = append(positional, flagSet.Arg(0))
		rest = flagSet.Args()[1:]
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	switch len(positional) {
	case 0:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing output file path"}
	case 1:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(positional[1:], " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		OutputPath: positional[0],
		SuitePaths: suitePaths,
		TestMode:   *testFlag,
		Quiet:      *quietFlag,
		Color:      !*noColorFlag,
		MaxRetries: *maxRetriesFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
