package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTimeout is returned by ExecToDict when the process outlives its timeout.
var ErrTimeout = errors.New("command timed out")

// ExitError reports a process that finished with a non-zero exit status.
type ExitError struct {
	Command []string
	Code    int
	Stderr  string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Command, " "), e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
