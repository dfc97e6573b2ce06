package vcs

import (
	"testing"

	"github.com/markhallen/bumpvcs/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMercurialSignedTagsUnsupported(t *testing.T) {
	mock := &MockExecutor{}
	hg := &Mercurial{Executor: mock}

	err := hg.Tag(true, "v1.0.0", "annotated message")

	assert.ErrorIs(t, err, errs.ErrSignedTagsUnsupported)
	assert.Empty(t, mock.Calls, "no command should run when signing is refused")
}

func TestMercurialTag(t *testing.T) {
	mock := &MockExecutor{}
	hg := &Mercurial{Executor: mock}

	require.NoError(t, hg.Tag(false, "v1.0.0", "release"))
	assert.Equal(t, []string{"hg", "tag", "v1.0.0", "--message", "release"}, mock.Calls[0].Args)
}

func TestMercurialLatestTagInfoAlwaysEmpty(t *testing.T) {
	mock := &MockExecutor{Output: []byte("anything")}
	hg := &Mercurial{Executor: mock}

	assert.True(t, hg.LatestTagInfo().Empty())
	assert.Empty(t, mock.Calls)
}

func TestMercurialAssertNonDirty(t *testing.T) {
	t.Run("status is restricted to tracked changes", func(st *testing.T) {
		mock := &MockExecutor{}
		hg := &Mercurial{Executor: mock}

		require.NoError(st, hg.AssertNonDirty())
		assert.Equal(st, []string{"hg", "status", "-mard"}, mock.Calls[0].Args)
	})

	t.Run("dirty", func(st *testing.T) {
		hg := &Mercurial{Executor: &MockExecutor{Output: []byte("M setup.py\nR gone.py\n")}}
		err := hg.AssertNonDirty()

		var dirty *errs.DirtyWorkingDirectoryError
		require.ErrorAs(st, err, &dirty)
		assert.Equal(st, "Mercurial", dirty.VCS)
		assert.Len(st, dirty.Lines, 2)
	})
}

func TestMercurialCommitForcesUTF8(t *testing.T) {
	mock := &MockExecutor{}
	hg := &Mercurial{Executor: mock}

	err := hg.Commit("bump", CommitContext{CurrentVersion: "0.1.0", NewVersion: "0.2.0"})
	require.NoError(t, err)

	env := mock.Calls[0].Env
	assert.Contains(t, env, "HGENCODING=utf-8")
	assert.Contains(t, env, "BUMPVERSION_CURRENT_VERSION=0.1.0")
	assert.Contains(t, env, "BUMPVERSION_NEW_VERSION=0.2.0")
	assert.Equal(t, []string{"hg", "commit", "--logfile"}, mock.Calls[0].Args[:3])
}

func TestMercurialAddPathIsNoop(t *testing.T) {
	mock := &MockExecutor{}
	hg := &Mercurial{Executor: mock}

	require.NoError(t, hg.AddPath("setup.py"))
	assert.Empty(t, mock.Calls)
}
