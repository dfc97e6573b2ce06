package vcs

import (
	"errors"
	"strings"

	"github.com/markhallen/bumpvcs/internal/errs"
	"github.com/markhallen/bumpvcs/internal/logger"
)

var svnCommitCommand = []string{"svn", "commit", "--file"}

// layoutMarkers are the conventional path segments separating a repository
// root from the checkout below it. "branches" is listed before "branch" so the
// longer marker wins when both would match.
var layoutMarkers = []string{"branches", "branch", "trunk"}

// RepoURLs locates the current working copy within a branches/trunk layout.
// Base and Root are empty when the checkout URL contains no layout marker.
// Derived fresh from svn info on every call, never cached.
type RepoURLs struct {
	Base    string
	Root    string
	Current string
}

// Subversion drives the svn executable. It has no cheap "is this the right
// tool" probe; usability instead means the checkout URL could be resolved to a
// branch/tag root.
type Subversion struct {
	Executor Executor
}

func (s *Subversion) Name() string  { return "subversion" }
func (s *Subversion) Label() string { return "SVN" }

func (s *Subversion) currentURL() (string, error) {
	out, err := s.Executor.Run(Command{Args: []string{"svn", "info"}})
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "URL:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "URL:")), nil
		}
	}
	return "", nil
}

// RepoURLs derives the base/root/current triple from the checkout's reported
// URL, splitting at the rightmost occurrence of a layout marker.
func (s *Subversion) RepoURLs() (RepoURLs, error) {
	current, err := s.currentURL()
	if err != nil {
		return RepoURLs{}, err
	}

	urls := RepoURLs{Current: current}
	for _, marker := range layoutMarkers {
		idx := strings.LastIndex(current, marker)
		if idx < 0 {
			continue
		}
		if idx > 0 {
			urls.Base = current[:idx-1]
		}
		urls.Root = current[:idx+len(marker)]
		break
	}
	return urls, nil
}

func (s *Subversion) IsUsable() (bool, error) {
	urls, err := s.RepoURLs()
	if err != nil {
		var cmdErr *errs.CommandError
		if errors.As(err, &cmdErr) || expectedProbeError(err) {
			logger.Get().Debug().Err(err).Msg("svn info failed")
			return false, nil
		}
		return false, err
	}
	return urls.Base != "", nil
}

func (s *Subversion) AssertNonDirty() error {
	// -q already hides untracked files; anything listed is a local change.
	out, err := s.Executor.Run(Command{Args: []string{"svn", "status", "-q"}})
	if err != nil {
		return err
	}
	if lines := dirtyLines(out); len(lines) > 0 {
		return &errs.DirtyWorkingDirectoryError{VCS: s.Label(), Lines: lines}
	}
	return nil
}

func (s *Subversion) LatestTagInfo() TagInfo {
	return TagInfo{}
}

func (s *Subversion) Commit(message string, ctx CommitContext, extraArgs ...string) error {
	return commitWithFile(s.Executor, svnCommitCommand, message, ctx, nil, extraArgs)
}

// Tag copies the branch root to a sibling tags/<name> location. svn requires
// --message to carry a value, so an absent message becomes an explicit empty
// string rather than an omitted flag.
func (s *Subversion) Tag(sign bool, name, message string) error {
	urls, err := s.RepoURLs()
	if err != nil {
		return err
	}
	args := []string{"svn", "copy", urls.Root, urls.Base + "/tags/" + name, "--message", message}
	_, err = s.Executor.Run(Command{Args: args})
	return err
}

// AddPath is a no-op: svn commits take explicit paths through the commit
// command itself, and there is no staging area to populate.
func (s *Subversion) AddPath(path string) error {
	return nil
}
