package testhelpers

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Scene is a test scene with a temporary Git repository and an isolated HOME.
type Scene struct {
	Dir  string
	Home string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary Git repository.
// Directories are removed by the testing package unless DEBUG is set.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "repo")
	home := filepath.Join(root, "home")
	if err := os.MkdirAll(home, 0750); err != nil {
		t.Fatalf("Failed to create home dir: %v", err)
	}

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Home: home,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// WriteConfig writes a .glitterrc into the repository root.
func (s *Scene) WriteConfig(contents string) error {
	return s.Repo.WriteFile(".glitterrc", contents)
}

// CLIResult is the captured result of a glitter invocation.
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout and stderr combined.
func (r CLIResult) Output() string {
	return r.Stdout + r.Stderr
}

// RunCLI runs the shared glitter binary inside the scene's repository.
// stdin is fed to the process; use "\n" to accept the confirmation prompt.
func (s *Scene) RunCLI(t *testing.T, stdin string, args ...string) CLIResult {
	t.Helper()

	binary := GetSharedBinaryPath()
	if binary == "" {
		t.Fatalf("glitter binary unavailable: %v", GetBinaryError())
	}

	cmd := exec.Command(binary, args...)
	cmd.Dir = s.Dir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(gitEnv(),
		"HOME="+s.Home,
		"GLITTER_LOG_FILE="+filepath.Join(s.Home, "glitter.log"),
		"NO_COLOR=1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CLIResult{}
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("failed to run glitter: %v", err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}
