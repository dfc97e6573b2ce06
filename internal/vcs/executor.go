package vcs

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"github.com/markhallen/bumpvcs/internal/errs"
)

// Command describes one external invocation: the argument vector, extra
// KEY=VALUE entries appended to the inherited environment, and optional bytes
// piped to the process's standard input.
type Command struct {
	Args  []string
	Env   []string
	Stdin []byte
}

// Executor abstracts external command execution for testability.
type Executor interface {
	// Run executes cmd synchronously in the current working directory and
	// returns its combined stdout and stderr. A nonzero exit is reported as
	// *errs.CommandError; failures to launch the process at all surface as
	// the raw OS error.
	Run(cmd Command) ([]byte, error)
}

// RealExecutor runs actual commands via os/exec.
type RealExecutor struct{}

func (r *RealExecutor) Run(cmd Command) ([]byte, error) {
	c := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	c.Env = append(os.Environ(), cmd.Env...)
	if cmd.Stdin != nil {
		c.Stdin = bytes.NewReader(cmd.Stdin)
	}

	out, err := c.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &errs.CommandError{
				Command:  cmd.Args,
				ExitCode: exitErr.ExitCode(),
				Output:   out,
			}
		}
		return out, err
	}
	return out, nil
}

// expectedProbeError reports whether err is an OS-level condition a usability
// probe must swallow: the executable is missing, unreadable, or a path
// component is not a directory. Anything else is a real error.
func expectedProbeError(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.ENOTDIR)
}
