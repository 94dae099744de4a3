package actions

import (
	"errors"
	"fmt"
	"strings"

	"glitter.dev/glitter/internal/config"
	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/runtime"
	"glitter.dev/glitter/internal/tasks"
	"glitter.dev/glitter/internal/template"
	"glitter.dev/glitter/internal/tui"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Args  []string
	Flags Flags
}

// CommitAction builds the commit message, asks for confirmation and commits every change
func CommitAction(ctx *runtime.Context, opts CommitOptions) (*CommitResult, error) {
	if !ctx.Repo.IsRepository() {
		return nil, glittererrors.ErrNotARepository
	}

	branch, err := ctx.Repo.CurrentBranch()
	if err != nil && !errors.Is(err, glittererrors.ErrNotOnBranch) {
		return nil, err
	}

	return commit(ctx, opts, branch)
}

func commit(ctx *runtime.Context, opts CommitOptions, branch string) (*CommitResult, error) {
	flags := opts.Flags

	message, err := BuildCommitMessage(ctx, opts.Args, flags.Raw)
	if err != nil {
		return nil, err
	}

	hooks, err := resolveHooks(ctx, flags)
	if err != nil {
		return nil, err
	}

	ctx.Splog.Info("%s", commitMessageLine(ctx.Config, message, flags))

	if !flags.Dry {
		if err := ctx.Prompter.Confirm(ctx.Context, "Press enter to continue"); err != nil {
			return nil, err
		}
	}

	start := ctx.Now()
	run := func(cmd runner.Command) error {
		_, err := ctx.Runner.Run(ctx.Context, cmd, flags.runOptions())
		return err
	}

	if ctx.Config.ShouldFetch() {
		if err := run(runner.Command{Program: "git", Args: []string{"fetch"}}); err != nil {
			return nil, err
		}
	}

	for _, cmd := range hooks {
		if err := run(cmd); err != nil {
			return nil, err
		}
	}

	if !flags.NoAdd {
		if err := run(runner.Command{Program: "git", Args: []string{"add", "."}}); err != nil {
			return nil, err
		}
	}

	commitArgs := []string{"commit", "-m", message}
	display := "git commit -m " + tui.Quoted(message)
	if flags.NoVerify {
		commitArgs = append(commitArgs, "--no-verify")
		display += " --no-verify"
	}
	if err := run(runner.Command{Program: "git", Args: commitArgs, Display: display}); err != nil {
		return nil, err
	}

	return &CommitResult{Start: start, Branch: branch}, nil
}

// BuildCommitMessage expands the configured commit message against args.
// In raw mode every argument is joined as is and argument rules are ignored.
func BuildCommitMessage(ctx *runtime.Context, args []string, raw bool) (string, error) {
	if raw {
		return template.NewExpander(nil, nil).Expand(config.DefaultCommitMessage, args)
	}
	expander := template.NewExpander(ctx.Config.CommitMessageArguments, ctx.Splog.Warn)
	return expander.Expand(ctx.Config.CommitMessage, args)
}

// resolveHooks turns the configured hook names into the commands they run.
// Hooks are skipped entirely with --no-verify.
func resolveHooks(ctx *runtime.Context, flags Flags) ([]runner.Command, error) {
	if flags.NoVerify || len(ctx.Config.Hooks) == 0 {
		return nil, nil
	}

	var commands []runner.Command
	for _, hook := range ctx.Config.Hooks {
		lines, ok := ctx.Tasks.Resolve(hook)
		if !ok {
			return nil, glittererrors.NewUnknownHookError(hook)
		}
		cmds, err := tasks.ParseCommandLines(lines)
		if err != nil {
			return nil, fmt.Errorf("hook %s: %w", hook, err)
		}
		commands = append(commands, cmds...)
	}

	if !flags.Dry {
		if err := preflight(ctx, commands); err != nil {
			return nil, err
		}
	}
	return commands, nil
}

// commitMessageLine renders the resolved message followed by a badge for every active flag
func commitMessageLine(cfg *config.Config, message string, flags Flags) string {
	var badges []string
	if flags.NoVerify {
		badges = append(badges, tui.Badge("no-verify"))
	}
	if flags.Dry {
		badges = append(badges, tui.Badge("dry-run"))
	}
	if cfg.IsDefault {
		badges = append(badges, tui.Badge("default-config"))
	}
	if flags.Raw {
		badges = append(badges, tui.Badge("raw-commit-message"))
	}
	if flags.Verbose {
		badges = append(badges, tui.Badge("verbose"))
	}
	if flags.NoAdd {
		badges = append(badges, tui.Badge("no-add"))
	}

	line := "Commit message: " + tui.Quoted(message)
	if len(badges) > 0 {
		line += " " + strings.Join(badges, " ")
	}
	return line
}
