package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSignedTagsUnsupported is returned when a signed tag is requested from
	// a VCS that cannot create one. There is no fallback to an unsigned tag.
	ErrSignedTagsUnsupported = errors.New("this VCS does not support signed tags")

	// ErrNoUsableVCS is returned when no supported VCS claims the current
	// working directory.
	ErrNoUsableVCS = errors.New("no usable VCS found in the current directory. bumpvcs supports Git, Mercurial and Subversion working copies")
)

// CommandError reports an external command that exited nonzero. It carries the
// full command line, the exit code and the captured output so a failure can be
// diagnosed without re-running anything.
type CommandError struct {
	Command  []string
	ExitCode int
	Output   []byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to run %q: exit code %d, output: %s",
		strings.Join(e.Command, " "), e.ExitCode, strings.TrimSpace(string(e.Output)))
}

// DirtyWorkingDirectoryError reports uncommitted local changes found during a
// pre-flight check. Lines holds the status lines for every offending path;
// untracked files are never included.
type DirtyWorkingDirectoryError struct {
	VCS   string
	Lines []string
}

func (e *DirtyWorkingDirectoryError) Error() string {
	return fmt.Sprintf("%s working directory is not clean:\n%s", e.VCS, strings.Join(e.Lines, "\n"))
}
