package cli

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// newUndoCmd creates the undo command
func newUndoCmd(flags *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Undo the last commit, keeping its changes staged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, f actions.Flags) error {
				return actions.UndoAction(ctx, actions.UndoOptions{Flags: f})
			})
		},
	}

	return cmd
}
