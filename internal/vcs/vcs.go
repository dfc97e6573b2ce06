package vcs

import (
	"errors"
	"os"
	"strings"

	"github.com/markhallen/bumpvcs/internal/errs"
	"github.com/markhallen/bumpvcs/internal/logger"
)

// TagInfo describes the most recent tag reachable from the current position.
// The zero value means no information is available, which is a legitimate and
// common outcome (fresh repository, or a VCS without a cheap describe query).
type TagInfo struct {
	Dirty               bool
	CommitSHA           string
	DistanceToLatestTag int
	CurrentVersion      string
}

// Empty reports whether no tag information was found. A successful describe
// always yields a commit id, so that field doubles as the presence marker.
func (i TagInfo) Empty() bool {
	return i == TagInfo{}
}

// CommitContext carries the version strings a commit exposes to hook scripts
// through BUMPVERSION_CURRENT_VERSION and BUMPVERSION_NEW_VERSION. It is
// caller-owned and read-only to the backend.
type CommitContext struct {
	CurrentVersion string
	NewVersion     string
}

func (c CommitContext) env() []string {
	return []string{
		"BUMPVERSION_CURRENT_VERSION=" + c.CurrentVersion,
		"BUMPVERSION_NEW_VERSION=" + c.NewVersion,
	}
}

// Backend is the capability contract shared by every VCS driver. Backends are
// stateless: every operation is a pure function of its arguments plus the
// ambient working directory, and none of them may run concurrently against the
// same working copy.
type Backend interface {
	Name() string
	Label() string

	// IsUsable probes whether this backend applies to the current working
	// directory. Expected "not this VCS" conditions (tool not installed,
	// not a repository) yield (false, nil); only unexpected OS-level errors
	// are returned.
	IsUsable() (bool, error)

	// AssertNonDirty returns *errs.DirtyWorkingDirectoryError when the
	// working copy has uncommitted changes. Untracked files do not count.
	AssertNonDirty() error

	// LatestTagInfo is best-effort: it returns the zero TagInfo when the
	// backend has no such concept or the query fails, never an error.
	LatestTagInfo() TagInfo

	// Commit records message (via a transient file) with the context's
	// version strings exported into the command's environment. extraArgs
	// are appended verbatim, e.g. to scope the commit to given paths.
	Commit(message string, ctx CommitContext, extraArgs ...string) error

	// Tag creates a tag at the current position. sign requests a signed
	// tag and fails with errs.ErrSignedTagsUnsupported where unavailable;
	// a nonempty message requests an annotated tag where the distinction
	// exists.
	Tag(sign bool, name, message string) error

	// AddPath stages path for the next commit. A no-op for backends that
	// commit the whole working copy implicitly.
	AddPath(path string) error
}

// All returns every supported backend, in selection preference order.
func All(x Executor) []Backend {
	return []Backend{
		&Git{Executor: x},
		&Mercurial{Executor: x},
		&Subversion{Executor: x},
	}
}

// Detect returns the first usable backend for the current working directory.
func Detect(x Executor) (Backend, error) {
	for _, b := range All(x) {
		ok, err := b.IsUsable()
		if err != nil {
			return nil, err
		}
		if ok {
			return b, nil
		}
	}
	return nil, errs.ErrNoUsableVCS
}

// probe runs a backend's usability command, mapping nonzero exits and expected
// launch failures to plain false.
func probe(x Executor, args []string) (bool, error) {
	_, err := x.Run(Command{Args: args})
	if err == nil {
		return true, nil
	}
	var cmdErr *errs.CommandError
	if errors.As(err, &cmdErr) || expectedProbeError(err) {
		logger.Get().Debug().Strs("command", args).Err(err).Msg("usability probe failed")
		return false, nil
	}
	return false, err
}

// commitWithFile implements the shared commit protocol: the message is written
// to a transient file which is removed on every exit path, and the command is
// run with the context's environment overlay plus any backend-specific extras.
func commitWithFile(x Executor, command []string, message string, ctx CommitContext, extraEnv, extraArgs []string) error {
	f, err := os.CreateTemp("", "bumpvcs-commit-")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	_, werr := f.WriteString(message)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return werr
	}

	args := append(append([]string{}, command...), f.Name())
	args = append(args, extraArgs...)
	env := append(ctx.env(), extraEnv...)

	if _, err := x.Run(Command{Args: args, Env: env}); err != nil {
		logger.Get().Error().Strs("command", args).Err(err).Msg("commit failed")
		return err
	}
	return nil
}

// dirtyLines filters machine-readable status output down to the lines that
// make the tree dirty, dropping blanks and untracked entries.
func dirtyLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "??") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
