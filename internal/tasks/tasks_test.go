package tasks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"glitter.dev/glitter/internal/config"
	"glitter.dev/glitter/internal/runner"
)

func TestSetResolve(t *testing.T) {
	t.Parallel()

	set := NewSet([]config.CustomTask{
		{Name: "fmt", Execute: []string{"go fmt ./..."}},
		{Name: "Lint", Execute: []string{"golangci-lint run", "go vet ./..."}},
		{Name: "FMT", Execute: []string{"gofmt -l ."}},
	})

	t.Run("exact name", func(t *testing.T) {
		t.Parallel()
		cmds, ok := set.Resolve("fmt")
		require.True(t, ok)
		require.Equal(t, []string{"go fmt ./..."}, cmds)
	})

	t.Run("case-insensitive name", func(t *testing.T) {
		t.Parallel()
		cmds, ok := set.Resolve("LINT")
		require.True(t, ok)
		require.Equal(t, []string{"golangci-lint run", "go vet ./..."}, cmds)
	})

	t.Run("first duplicate wins", func(t *testing.T) {
		t.Parallel()
		cmds, ok := set.Resolve("Fmt")
		require.True(t, ok)
		require.Equal(t, []string{"go fmt ./..."}, cmds)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, ok := set.Resolve("test")
		require.False(t, ok)
	})

	t.Run("names keep config order without duplicates", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"fmt", "Lint"}, set.Names())
		require.Equal(t, 2, set.Len())
	})
}

func TestEmptySet(t *testing.T) {
	t.Parallel()

	set := NewSet(nil)
	_, ok := set.Resolve("anything")
	require.False(t, ok)
	require.Empty(t, set.Names())
}

func TestParseCommandLine(t *testing.T) {
	t.Setenv("GLITTER_TEST_TARGET", "./cmd/...")

	tests := []struct {
		name     string
		line     string
		expected runner.Command
	}{
		{
			name:     "program only",
			line:     "true",
			expected: runner.Command{Program: "true", Args: []string{}},
		},
		{
			name:     "whitespace separated",
			line:     "cargo   fmt  --all",
			expected: runner.Command{Program: "cargo", Args: []string{"fmt", "--all"}},
		},
		{
			name:     "quoted argument",
			line:     `echo "hello world"`,
			expected: runner.Command{Program: "echo", Args: []string{"hello world"}},
		},
		{
			name:     "environment expansion",
			line:     "go vet $GLITTER_TEST_TARGET",
			expected: runner.Command{Program: "go", Args: []string{"vet", "./cmd/..."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommandLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParseCommandLineErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseCommandLine("   ")
	require.Error(t, err)

	_, err = ParseCommandLine(`echo "unterminated`)
	require.Error(t, err)

	_, err = ParseCommandLines([]string{"true", ""})
	require.Error(t, err)

	cmds, err := ParseCommandLines([]string{"true", "echo a"})
	require.NoError(t, err)
	require.Len(t, cmds, 2)
}
