// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/pflag"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/config"
)

// GlobalFlags holds the switches every glitter command accepts
type GlobalFlags struct {
	Dry      bool
	Raw      bool
	NoVerify bool
	Verbose  bool
	NoAdd    bool
	RCPath   string
}

// Register adds the global flags to fs
func (g *GlobalFlags) Register(fs *pflag.FlagSet) {
	fs.BoolVar(&g.Dry, "dry", false, "Show the commands that would run without running them")
	fs.BoolVar(&g.Raw, "raw", false, "Use the arguments as the commit message, ignoring the configured template")
	fs.BoolVar(&g.NoVerify, "no-verify", false, "Skip hooks and pass --no-verify to git")
	fs.BoolVarP(&g.Verbose, "verbose", "v", false, "Print the output of every command (defaults to the verbose config value)")
	fs.BoolVar(&g.NoAdd, "no-add", false, "Commit only what is already staged")
	fs.StringVar(&g.RCPath, "rc", "", "Path to a configuration file (defaults to .glitterrc in the working directory)")
}

// Resolve turns the parsed flags into action flags.
// A flag that was not given on the command line falls back to the configuration,
// which only provides a default for verbose.
func (g *GlobalFlags) Resolve(fs *pflag.FlagSet, cfg *config.Config) actions.Flags {
	verbose := cfg.VerboseDefault()
	if fs.Changed("verbose") {
		verbose = g.Verbose
	}
	return actions.Flags{
		Dry:      g.Dry,
		Raw:      g.Raw,
		NoVerify: g.NoVerify,
		Verbose:  verbose,
		NoAdd:    g.NoAdd,
	}
}
