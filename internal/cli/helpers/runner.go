package helpers

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/config"
	"glitter.dev/glitter/internal/runtime"
	"glitter.dev/glitter/internal/tui"
)

// Run loads the configuration, builds a runtime context and hands it to fn
// together with the resolved flags
func Run(cmd *cobra.Command, g *GlobalFlags, fn func(ctx *runtime.Context, flags actions.Flags) error) error {
	cfg, err := LoadConfig(g.RCPath)
	if err != nil {
		return err
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		splog = tui.NewSplog()
		splog.Debug("file logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	goCtx := cmd.Context()
	if goCtx == nil {
		goCtx = context.Background()
	}

	ctx := runtime.NewContext(goCtx, cfg, splog)
	flags := g.Resolve(cmd.Flags(), cfg)
	splog.Record("glitter invoked",
		"command", cmd.Name(),
		"args", strings.Join(os.Args[1:], " "),
		"config", cfg.Path,
	)

	if err := fn(ctx, flags); err != nil {
		splog.Record("glitter failed", "command", cmd.Name(), "error", err.Error())
		return err
	}
	return nil
}

// LoadConfig reads the configuration for the working directory
func LoadConfig(explicitPath string) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(wd, explicitPath)
}
