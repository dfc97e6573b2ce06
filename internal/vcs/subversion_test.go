package vcs

import (
	"testing"

	"github.com/markhallen/bumpvcs/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svnInfoMock(url string) *MockExecutor {
	return &MockExecutor{
		Results: map[string]MockResult{
			"svn info": {Output: []byte("Path: .\nWorking Copy Root Path: /work\nURL: " + url + "\nRepository Root: https://svn.example.com\n")},
		},
	}
}

func TestRepoURLs(t *testing.T) {
	t.Run("trunk checkout", func(st *testing.T) {
		svn := &Subversion{Executor: svnInfoMock("https://svn.example.com/project/trunk/sub")}
		urls, err := svn.RepoURLs()

		require.NoError(st, err)
		assert.Equal(st, "https://svn.example.com/project", urls.Base)
		assert.Equal(st, "https://svn.example.com/project/trunk", urls.Root)
		assert.Equal(st, "https://svn.example.com/project/trunk/sub", urls.Current)
	})

	t.Run("branches checkout", func(st *testing.T) {
		svn := &Subversion{Executor: svnInfoMock("https://svn.example.com/project/branches/feature-x")}
		urls, err := svn.RepoURLs()

		require.NoError(st, err)
		assert.Equal(st, "https://svn.example.com/project", urls.Base)
		assert.Equal(st, "https://svn.example.com/project/branches", urls.Root)
	})

	t.Run("no layout marker", func(st *testing.T) {
		svn := &Subversion{Executor: svnInfoMock("https://svn.example.com/project")}
		urls, err := svn.RepoURLs()

		require.NoError(st, err)
		assert.Empty(st, urls.Base)
		assert.Empty(st, urls.Root)
		assert.Equal(st, "https://svn.example.com/project", urls.Current)
	})
}

func TestSubversionIsUsable(t *testing.T) {
	t.Run("usable inside a trunk checkout", func(st *testing.T) {
		svn := &Subversion{Executor: svnInfoMock("https://svn.example.com/project/trunk")}
		ok, err := svn.IsUsable()

		require.NoError(st, err)
		assert.True(st, ok)
	})

	t.Run("unusable without a marker", func(st *testing.T) {
		svn := &Subversion{Executor: svnInfoMock("https://svn.example.com/project")}
		ok, err := svn.IsUsable()

		require.NoError(st, err)
		assert.False(st, ok)
	})

	t.Run("unusable outside a working copy", func(st *testing.T) {
		mock := &MockExecutor{Err: exitError([]string{"svn", "info"}, 1, "svn: E155007: not a working copy")}
		svn := &Subversion{Executor: mock}
		ok, err := svn.IsUsable()

		require.NoError(st, err)
		assert.False(st, ok)
	})
}

func TestSubversionAssertNonDirty(t *testing.T) {
	t.Run("clean", func(st *testing.T) {
		svn := &Subversion{Executor: &MockExecutor{Output: []byte("")}}
		assert.NoError(st, svn.AssertNonDirty())
	})

	t.Run("any quiet-status output is dirty", func(st *testing.T) {
		svn := &Subversion{Executor: &MockExecutor{Output: []byte("M       setup.py\n")}}
		err := svn.AssertNonDirty()

		var dirty *errs.DirtyWorkingDirectoryError
		require.ErrorAs(st, err, &dirty)
		assert.Equal(st, "SVN", dirty.VCS)
	})
}

func TestSubversionTag(t *testing.T) {
	t.Run("copies root to tags sibling", func(st *testing.T) {
		mock := svnInfoMock("https://svn.example.com/project/trunk")
		svn := &Subversion{Executor: mock}

		require.NoError(st, svn.Tag(false, "v1.1.0", "release 1.1.0"))
		last := mock.Calls[len(mock.Calls)-1].Args
		assert.Equal(st, []string{
			"svn", "copy",
			"https://svn.example.com/project/trunk",
			"https://svn.example.com/project/tags/v1.1.0",
			"--message", "release 1.1.0",
		}, last)
	})

	t.Run("empty message still passes the flag value", func(st *testing.T) {
		mock := svnInfoMock("https://svn.example.com/project/trunk")
		svn := &Subversion{Executor: mock}

		require.NoError(st, svn.Tag(false, "v1.1.0", ""))
		last := mock.Calls[len(mock.Calls)-1].Args
		assert.Equal(st, "--message", last[len(last)-2])
		assert.Equal(st, "", last[len(last)-1])
	})
}

func TestSubversionLatestTagInfoEmpty(t *testing.T) {
	svn := &Subversion{Executor: &MockExecutor{}}
	assert.True(t, svn.LatestTagInfo().Empty())
}

func TestSubversionAddPathIsNoop(t *testing.T) {
	mock := &MockExecutor{}
	svn := &Subversion{Executor: mock}

	require.NoError(t, svn.AddPath("setup.py"))
	assert.Empty(t, mock.Calls)
	// the commit command template must stay intact
	assert.Equal(t, []string{"svn", "commit", "--file"}, svnCommitCommand)
}
