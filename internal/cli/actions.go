package cli

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// newActionsCmd creates the actions command
func newActionsCmd(flags *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action"},
		Short:   "List the built-in actions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, _ actions.Flags) error {
				return actions.ListActionsAction(ctx)
			})
		},
	}

	return cmd
}
