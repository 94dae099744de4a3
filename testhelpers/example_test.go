package testhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"glitter.dev/glitter/testhelpers"
)

func TestGitRepoBasicOperations(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	require.Zero(t, scene.Repo.CommitCount())

	require.NoError(t, scene.Repo.CreateChangeAndCommit("test content", "test"))

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)
	require.Equal(t, 1, scene.Repo.CommitCount())
	testhelpers.ExpectCommits(t, scene.Repo, []string{"test content"})
}

func TestSceneWithSetup(t *testing.T) {
	scene := testhelpers.NewScene(t, func(scene *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(scene); err != nil {
			return err
		}
		return scene.Repo.CreateChangeAndCommit("commit 2", "2")
	})

	testhelpers.ExpectCommits(t, scene.Repo, []string{"commit 2", "1"})
}

func TestBareRemote(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.Empty(t, scene.Repo.RemoteBranchSHA("origin", "main"))

	require.NoError(t, scene.Repo.RunGitCommand("push", "origin", "main"))
	head, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "HEAD")
	require.NoError(t, err)
	require.Equal(t, head, scene.Repo.RemoteBranchSHA("origin", "main"))
}
