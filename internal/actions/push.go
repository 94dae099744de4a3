package actions

import (
	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/runtime"
	"glitter.dev/glitter/internal/tui"
)

// PushOptions contains options for the push command
type PushOptions struct {
	Args  []string
	Flags Flags
}

// PushAction commits, then pulls and pushes the current branch to origin
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	if !ctx.Repo.IsRepository() {
		return glittererrors.ErrNotARepository
	}

	// A detached HEAD has nothing to push, so fail before anything runs
	branch, err := ctx.Repo.CurrentBranch()
	if err != nil {
		return err
	}

	result, err := commit(ctx, CommitOptions(opts), branch)
	if err != nil {
		return err
	}

	for _, verb := range []string{"pull", "push"} {
		args := []string{verb, "origin", result.Branch}
		display := "git " + verb + " origin " + tui.Emphasize(tui.ColorGreen(result.Branch))
		if opts.Flags.NoVerify {
			args = append(args, "--no-verify")
			display += " --no-verify"
		}
		cmd := runner.Command{Program: "git", Args: args, Display: display}
		outcome, err := ctx.Runner.Run(ctx.Context, cmd, opts.Flags.runOptions())
		if err != nil {
			return err
		}
		if outcome.Status == runner.StatusWarning {
			ctx.Splog.Debug("%s: %s", cmd.String(), outcome.Note)
		}
	}

	if !opts.Flags.Dry {
		ctx.Splog.Info("Completed in %s", tui.ColorGreen(tui.FormatDuration(ctx.Now().Sub(result.Start))))
	}
	return nil
}
