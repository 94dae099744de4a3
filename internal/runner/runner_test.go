package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/internal/tui"
)

func newTestRunner(t *testing.T) (*ProcessRunner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewProcessRunner(tui.NewSplogWithWriter(&buf)), &buf
}

// writeFakeGit puts a git script on PATH that prints to stderr and exits with code
func writeFakeGit(t *testing.T, stderr string, code int) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\necho \"" + stderr + "\" >&2\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "git", Command{Program: "git"}.String())
	require.Equal(t, "git add .", Command{Program: "git", Args: []string{"add", "."}}.String())
	require.Equal(t, "git commit -m `x`", Command{
		Program: "git",
		Args:    []string{"commit", "-m", "x"},
		Display: "git commit -m `x`",
	}.String())
}

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		r, buf := newTestRunner(t)
		outcome, err := r.Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "echo hello"}}, Options{})
		require.NoError(t, err)
		require.Equal(t, StatusSuccess, outcome.Status)
		require.Equal(t, "hello\n", outcome.Stdout)
		require.Contains(t, buf.String(), "✔ $ sh -c echo hello")
		require.NotContains(t, buf.String(), "hello\n")
	})

	t.Run("verbose echoes stdout", func(t *testing.T) {
		t.Parallel()
		r, buf := newTestRunner(t)
		_, err := r.Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "printf hello"}}, Options{Verbose: true})
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		require.True(t, strings.HasPrefix(lines[0], "✔ $ sh -c printf hello"))
		require.Equal(t, "hello", lines[1])
	})
}

func TestRunMeasuresElapsed(t *testing.T) {
	t.Parallel()

	r, buf := newTestRunner(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	r.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}

	outcome, err := r.Run(context.Background(), Command{Program: "true"}, Options{})
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, outcome.Elapsed)
	require.Contains(t, buf.String(), "✔ $ true 1.5s")
}

func TestRunDrySkipsExecution(t *testing.T) {
	t.Parallel()

	r, buf := newTestRunner(t)
	r.lookPath = func(string) (string, error) {
		t.Fatal("dry runs must not look up binaries")
		return "", nil
	}

	outcome, err := r.Run(context.Background(), Command{Program: "no-such-binary-glitter", Args: []string{"x"}}, Options{Dry: true})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, outcome.Status)
	require.Zero(t, outcome.Elapsed)
	require.Equal(t, "✔ $ no-such-binary-glitter x\n", buf.String())
}

func TestRunMissingBinary(t *testing.T) {
	t.Parallel()

	r, buf := newTestRunner(t)
	_, err := r.Run(context.Background(), Command{Program: "no-such-binary-glitter"}, Options{})
	require.ErrorIs(t, err, glittererrors.ErrBinaryNotFound)
	require.Equal(t, "Cannot find binary `no-such-binary-glitter`", err.Error())
	require.Contains(t, buf.String(), "✖ $ no-such-binary-glitter")
}

func TestRunFailureReturnsCommandError(t *testing.T) {
	t.Parallel()

	r, buf := newTestRunner(t)
	_, err := r.Run(context.Background(), Command{
		Program: "sh",
		Args:    []string{"-c", "echo out; echo err >&2; exit 3"},
	}, Options{})
	require.ErrorIs(t, err, glittererrors.ErrCommandFailed)

	var cmdErr *glittererrors.CommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, "sh", cmdErr.Command)
	require.Equal(t, "out\n", cmdErr.Stdout)
	require.Equal(t, "err\n", cmdErr.Stderr)
	require.Contains(t, buf.String(), "✖ $ sh -c")
	require.Contains(t, buf.String(), "Command failed to run")
}

func TestRunPullMissingRemoteRefIsWarning(t *testing.T) {
	writeFakeGit(t, "fatal: couldn't find remote ref feature", 1)

	r, buf := newTestRunner(t)
	outcome, err := r.Run(context.Background(), Command{Program: "git", Args: []string{"pull", "origin", "feature"}}, Options{})
	require.NoError(t, err)
	require.Equal(t, StatusWarning, outcome.Status)
	require.Equal(t, RemoteRefMissingNote, outcome.Note)
	require.Contains(t, buf.String(), "⚠ $ git pull origin feature")
	require.Contains(t, buf.String(), RemoteRefMissingNote)
}

func TestRunMissingRemoteRefOnlyForgivenForPull(t *testing.T) {
	writeFakeGit(t, "fatal: couldn't find remote ref feature", 1)

	r, _ := newTestRunner(t)
	_, err := r.Run(context.Background(), Command{Program: "git", Args: []string{"push", "origin", "feature"}}, Options{})
	require.ErrorIs(t, err, glittererrors.ErrCommandFailed)
}

func TestRunPullOtherFailureIsFatal(t *testing.T) {
	writeFakeGit(t, "fatal: unable to access remote", 1)

	r, _ := newTestRunner(t)
	_, err := r.Run(context.Background(), Command{Program: "git", Args: []string{"pull", "origin", "feature"}}, Options{})
	require.ErrorIs(t, err, glittererrors.ErrCommandFailed)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	r, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Command{Program: "sleep", Args: []string{"5"}}, Options{})
	require.ErrorIs(t, err, glittererrors.ErrCommandFailed)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLookPath(t *testing.T) {
	t.Parallel()

	r, _ := newTestRunner(t)
	path, err := r.LookPath("sh")
	require.NoError(t, err)
	require.NotEmpty(t, path)

	_, err = r.LookPath("no-such-binary-glitter")
	require.ErrorIs(t, err, glittererrors.ErrBinaryNotFound)
}
