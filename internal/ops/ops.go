package ops

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/markhallen/bumpvcs/internal/ui"
	"github.com/markhallen/bumpvcs/internal/vcs"
)

// ConfirmFunc abstracts interactive prompts for testability.
type ConfirmFunc func(message string) (bool, error)

// Service orchestrates the CLI-facing VCS operations so commands stay thin.
// Backend and ConfirmFn are injectable for tests; when Backend is nil the
// active one is detected on first use.
type Service struct {
	Backend   vcs.Backend
	Executor  vcs.Executor
	Out       io.Writer
	ConfirmFn ConfirmFunc
}

func (s *Service) output() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Service) backend() (vcs.Backend, error) {
	if s.Backend != nil {
		return s.Backend, nil
	}
	x := s.Executor
	if x == nil {
		x = &vcs.RealExecutor{}
	}
	b, err := vcs.Detect(x)
	if err != nil {
		return nil, err
	}
	s.Backend = b
	return b, nil
}

// Check verifies the working copy has no uncommitted changes.
func (s *Service) Check() error {
	b, err := s.backend()
	if err != nil {
		return err
	}
	if err := b.AssertNonDirty(); err != nil {
		return err
	}
	fmt.Fprintf(s.output(), "%s working copy is clean\n", ui.Green(b.Label()))
	return nil
}

// Info prints the active backend and whatever tag information it can offer.
func (s *Service) Info() error {
	b, err := s.backend()
	if err != nil {
		return err
	}

	info := b.LatestTagInfo()
	if info.Empty() {
		fmt.Fprintf(s.output(), "%s: no tag information available\n", b.Label())
		return nil
	}

	rows := [][]string{
		{ui.Bold("vcs"), b.Label()},
		{ui.Bold("current version"), info.CurrentVersion},
		{ui.Bold("commits since tag"), strconv.Itoa(info.DistanceToLatestTag)},
		{ui.Bold("commit"), info.CommitSHA},
	}
	if info.Dirty {
		rows = append(rows, []string{ui.Bold("dirty"), ui.Yellow("yes")})
	}
	ui.PrintTable(s.output(), rows, 0)
	return nil
}

// Commit stages each path and records a commit carrying the version context.
func (s *Service) Commit(message string, ctx vcs.CommitContext, paths []string) error {
	b, err := s.backend()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := b.AddPath(p); err != nil {
			return err
		}
	}
	if err := b.Commit(message, ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.output(), "%s committed\n", ui.Green(b.Label()))
	return nil
}

// Tag creates a tag, asking for confirmation first when a prompt is wired.
func (s *Service) Tag(sign bool, name, message string) error {
	b, err := s.backend()
	if err != nil {
		return err
	}

	if s.ConfirmFn != nil {
		ok, err := s.ConfirmFn(fmt.Sprintf("Create %s tag %q?", b.Label(), name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.output(), ui.Dim("aborted"))
			return nil
		}
	}

	if err := b.Tag(sign, name, message); err != nil {
		return err
	}
	fmt.Fprintf(s.output(), "%s tagged %s\n", ui.Green(b.Label()), ui.Bold(name))
	return nil
}
