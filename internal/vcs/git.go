package vcs

import (
	"strconv"
	"strings"

	"github.com/markhallen/bumpvcs/internal/errs"
	"github.com/markhallen/bumpvcs/internal/logger"
)

// Command templates are immutable, type-level configuration. Never append to
// these in place.
var (
	gitUsableCommand = []string{"git", "rev-parse", "--git-dir"}
	gitCommitCommand = []string{"git", "commit", "-F"}
)

// Git drives the git executable.
type Git struct {
	Executor Executor
}

func (g *Git) Name() string  { return "git" }
func (g *Git) Label() string { return "Git" }

func (g *Git) IsUsable() (bool, error) {
	return probe(g.Executor, gitUsableCommand)
}

func (g *Git) AssertNonDirty() error {
	out, err := g.Executor.Run(Command{Args: []string{"git", "status", "--porcelain"}})
	if err != nil {
		return err
	}
	if lines := dirtyLines(out); len(lines) > 0 {
		return &errs.DirtyWorkingDirectoryError{VCS: g.Label(), Lines: lines}
	}
	return nil
}

func (g *Git) LatestTagInfo() TagInfo {
	// git-describe doesn't refresh the index, so stat changes from earlier
	// file rewrites would show up as a stale dirty marker.
	if _, err := g.Executor.Run(Command{Args: []string{"git", "update-index", "--refresh"}}); err != nil {
		logger.Get().Debug().Err(err).Msg("git update-index failed")
		return TagInfo{}
	}

	out, err := g.Executor.Run(Command{Args: []string{
		"git", "describe", "--dirty", "--tags", "--long", "--abbrev=40", "--match=v*",
	}})
	if err != nil {
		// Expected on a repository with no v* tags yet.
		logger.Get().Debug().Err(err).Msg("git describe failed")
		return TagInfo{}
	}
	return parseDescribe(string(out))
}

// parseDescribe decodes "v<version>-<distance>-g<sha>[-dirty]". The version
// itself may contain dashes, so the fixed fields are popped off the tail and
// whatever remains is the version.
func parseDescribe(describe string) TagInfo {
	parts := strings.Split(strings.TrimSpace(describe), "-")

	var info TagInfo
	if parts[len(parts)-1] == "dirty" {
		info.Dirty = true
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 3 {
		return TagInfo{}
	}

	info.CommitSHA = strings.TrimPrefix(parts[len(parts)-1], "g")
	parts = parts[:len(parts)-1]

	distance, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return TagInfo{}
	}
	info.DistanceToLatestTag = distance
	parts = parts[:len(parts)-1]

	info.CurrentVersion = strings.TrimPrefix(strings.Join(parts, "-"), "v")
	return info
}

func (g *Git) Commit(message string, ctx CommitContext, extraArgs ...string) error {
	return commitWithFile(g.Executor, gitCommitCommand, message, ctx, nil, extraArgs)
}

func (g *Git) Tag(sign bool, name, message string) error {
	args := []string{"git", "tag", name}
	if sign {
		args = append(args, "--sign")
	}
	if message != "" {
		args = append(args, "--message", message)
	}
	_, err := g.Executor.Run(Command{Args: args})
	return err
}

// AddPath stages only already-tracked changes under path, so a bump never
// sweeps up unrelated untracked files.
func (g *Git) AddPath(path string) error {
	_, err := g.Executor.Run(Command{Args: []string{"git", "add", "--update", path}})
	return err
}
