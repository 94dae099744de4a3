package actions

import (
	"strings"

	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/runtime"
	"glitter.dev/glitter/internal/tasks"
	"glitter.dev/glitter/internal/tui"
)

// CustomCommandOptions contains options for the cc command
type CustomCommandOptions struct {
	Args  []string
	Flags Flags
}

// CustomCommandAction lists custom tasks, prints help or runs the named task
func CustomCommandAction(ctx *runtime.Context, opts CustomCommandOptions) error {
	if len(opts.Args) == 0 {
		ctx.Splog.Info("Try `cc help`")
		return nil
	}

	switch strings.ToLower(opts.Args[0]) {
	case "list":
		ctx.Splog.Info("Custom tasks specified:\n%s", emphasizedList(ctx.Tasks.Names()))
	case "help":
		ctx.Splog.Info("Runnable commands:\n%s\nCustom tasks specified:\n%s",
			emphasizedList(ccSubcommands), emphasizedList(ctx.Tasks.Names()))
		ctx.Splog.Tip("If the output of custom tasks is valuable to you, please provide the -v flag when running.")
	default:
		return RunTaskAction(ctx, RunTaskOptions{Name: opts.Args[0], Flags: opts.Flags})
	}
	return nil
}

// RunTaskOptions contains options for running a custom task
type RunTaskOptions struct {
	Name  string
	Flags Flags
}

// RunTaskAction runs every command of a custom task in order.
// All binaries are looked up before the first command runs.
func RunTaskAction(ctx *runtime.Context, opts RunTaskOptions) error {
	lines, ok := ctx.Tasks.Resolve(opts.Name)
	if !ok {
		return glittererrors.NewUnknownCustomTaskError(opts.Name)
	}

	commands, err := tasks.ParseCommandLines(lines)
	if err != nil {
		return err
	}
	if err := preflight(ctx, commands); err != nil {
		return err
	}

	if opts.Flags.Dry {
		ctx.Splog.Info("%s", tui.Badge("dry-run"))
	}

	for _, cmd := range commands {
		if _, err := ctx.Runner.Run(ctx.Context, cmd, opts.Flags.runOptions()); err != nil {
			return err
		}
	}
	return nil
}

// FallbackOptions contains options for an action name glitter does not know
type FallbackOptions struct {
	Action string
	Flags  Flags
}

// FallbackAction runs the custom task named like the action, if there is one
func FallbackAction(ctx *runtime.Context, opts FallbackOptions) error {
	if _, ok := ctx.Tasks.Resolve(opts.Action); !ok {
		return glittererrors.NewUnknownActionError(opts.Action)
	}
	return RunTaskAction(ctx, RunTaskOptions{Name: opts.Action, Flags: opts.Flags})
}

// preflight makes sure every program can be found before any of them runs
func preflight(ctx *runtime.Context, commands []runner.Command) error {
	for _, cmd := range commands {
		if _, err := ctx.Runner.LookPath(cmd.Program); err != nil {
			return err
		}
	}
	return nil
}
