package actions

import (
	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/runtime"
	"glitter.dev/glitter/internal/tui"
)

// UndoOptions contains options for the undo command
type UndoOptions struct {
	Flags Flags
}

// UndoAction removes the last commit while keeping its changes staged
func UndoAction(ctx *runtime.Context, opts UndoOptions) error {
	if opts.Flags.Dry {
		ctx.Splog.Info("%s", tui.Badge("dry-run"))
	}
	cmd := runner.Command{Program: "git", Args: []string{"reset", "--soft", "HEAD~1"}}
	_, err := ctx.Runner.Run(ctx.Context, cmd, opts.Flags.runOptions())
	return err
}

// ListActionsAction prints the built-in actions
func ListActionsAction(ctx *runtime.Context) error {
	ctx.Splog.Info("Actions available:\n%s", emphasizedList(BuiltinActions))
	return nil
}
