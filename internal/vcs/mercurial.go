package vcs

import (
	"github.com/markhallen/bumpvcs/internal/errs"
)

var (
	hgUsableCommand = []string{"hg", "root"}
	hgCommitCommand = []string{"hg", "commit", "--logfile"}
)

// Mercurial drives the hg executable. Commits always cover the whole working
// copy, so staging is a no-op, and hg has no equivalent of the git describe
// query this tool relies on for tag info.
type Mercurial struct {
	Executor Executor
}

func (m *Mercurial) Name() string  { return "mercurial" }
func (m *Mercurial) Label() string { return "Mercurial" }

func (m *Mercurial) IsUsable() (bool, error) {
	return probe(m.Executor, hgUsableCommand)
}

func (m *Mercurial) AssertNonDirty() error {
	// -mard restricts to modified/added/removed/deleted, leaving out
	// untracked and ignored files.
	out, err := m.Executor.Run(Command{Args: []string{"hg", "status", "-mard"}})
	if err != nil {
		return err
	}
	if lines := dirtyLines(out); len(lines) > 0 {
		return &errs.DirtyWorkingDirectoryError{VCS: m.Label(), Lines: lines}
	}
	return nil
}

func (m *Mercurial) LatestTagInfo() TagInfo {
	return TagInfo{}
}

func (m *Mercurial) Commit(message string, ctx CommitContext, extraArgs ...string) error {
	// hg decodes the logfile using HGENCODING; force UTF-8 to match the
	// bytes the transient file is written with.
	return commitWithFile(m.Executor, hgCommitCommand, message, ctx,
		[]string{"HGENCODING=utf-8"}, extraArgs)
}

func (m *Mercurial) Tag(sign bool, name, message string) error {
	if sign {
		return errs.ErrSignedTagsUnsupported
	}
	args := []string{"hg", "tag", name}
	if message != "" {
		args = append(args, "--message", message)
	}
	_, err := m.Executor.Run(Command{Args: args})
	return err
}

func (m *Mercurial) AddPath(path string) error {
	return nil
}
