package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/testhelpers"
)

func TestWorkDirOutsideRepository(t *testing.T) {
	t.Parallel()

	probe := NewWorkDir(t.TempDir())
	require.False(t, probe.IsRepository())

	_, err := probe.CurrentBranch()
	require.ErrorIs(t, err, glittererrors.ErrNotARepository)
}

func TestWorkDirUnbornBranch(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	probe := NewWorkDir(scene.Dir)
	require.True(t, probe.IsRepository())

	branch, err := probe.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}

func TestWorkDirFromSubdirectory(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature/login"))

	sub := filepath.Join(scene.Dir, "nested", "dir")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	probe := NewWorkDir(sub)
	require.True(t, probe.IsRepository())
	branch, err := probe.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "feature/login", branch)
}

func TestWorkDirDetachedHead(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

	probe := NewWorkDir(scene.Dir)
	require.True(t, probe.IsRepository())
	_, err := probe.CurrentBranch()
	require.ErrorIs(t, err, glittererrors.ErrNotOnBranch)
}

func TestOpenRepositoryRoot(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewScene(t, nil)
	repo, err := OpenRepository(scene.Dir)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(scene.Dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(repo.GetRepoRoot())
	require.NoError(t, err)
	require.Equal(t, want, got)
}
