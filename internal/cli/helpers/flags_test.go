package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/config"
)

func parse(t *testing.T, args ...string) (*helpers.GlobalFlags, *pflag.FlagSet) {
	t.Helper()
	g := &helpers.GlobalFlags{}
	fs := pflag.NewFlagSet("glitter", pflag.ContinueOnError)
	g.Register(fs)
	require.NoError(t, fs.Parse(args))
	return g, fs
}

func boolPtr(b bool) *bool {
	return &b
}

func TestResolveFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   []string
		config *config.Config
		want   actions.Flags
	}{
		{
			name:   "nothing set",
			config: config.Default(),
			want:   actions.Flags{},
		},
		{
			name:   "verbose falls back to config",
			config: &config.Config{Verbose: boolPtr(true)},
			want:   actions.Flags{Verbose: true},
		},
		{
			name:   "explicit false beats config",
			args:   []string{"--verbose=false"},
			config: &config.Config{Verbose: boolPtr(true)},
			want:   actions.Flags{},
		},
		{
			name:   "short verbose",
			args:   []string{"-v"},
			config: config.Default(),
			want:   actions.Flags{Verbose: true},
		},
		{
			name:   "every switch",
			args:   []string{"--dry", "--raw", "--no-verify", "--no-add", "--verbose=true"},
			config: &config.Config{Verbose: boolPtr(false)},
			want:   actions.Flags{Dry: true, Raw: true, NoVerify: true, Verbose: true, NoAdd: true},
		},
		{
			name:   "explicit false for a switch without config default",
			args:   []string{"--dry=false"},
			config: config.Default(),
			want:   actions.Flags{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, fs := parse(t, tt.args...)
			require.Equal(t, tt.want, g.Resolve(fs, tt.config))
		})
	}
}

func TestRCFlag(t *testing.T) {
	t.Parallel()

	g, _ := parse(t, "--rc", "ci/.glitterrc.toml")
	require.Equal(t, "ci/.glitterrc.toml", g.RCPath)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "glitter.toml")
	require.NoError(t, os.WriteFile(path, []byte("commit_message = \"$1: $2+\"\n"), 0o600))

	cfg, err := helpers.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "$1: $2+", cfg.CommitMessage)
	require.False(t, cfg.IsDefault)
}
