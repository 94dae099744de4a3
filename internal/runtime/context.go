package runtime

import (
	"context"
	"time"

	"glitter.dev/glitter/internal/config"
	"glitter.dev/glitter/internal/git"
	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/tasks"
	"glitter.dev/glitter/internal/tui"
)

// Context provides access to configuration and collaborators for actions
type Context struct {
	// Context is canceled on interrupt
	Context  context.Context
	Config   *config.Config
	Tasks    *tasks.Set
	Splog    *tui.Splog
	Runner   runner.Runner
	Repo     git.Probe
	Prompter tui.Prompter
	Now      func() time.Time
}

// NewContext creates a context wired to real processes, the working directory
// repository and stdin confirmation
func NewContext(ctx context.Context, cfg *config.Config, splog *tui.Splog) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Tasks:    tasks.NewSet(cfg.CustomTasks),
		Splog:    splog,
		Runner:   runner.NewProcessRunner(splog),
		Repo:     git.NewWorkDir(""),
		Prompter: tui.NewStdinPrompter(),
		Now:      time.Now,
	}
}
