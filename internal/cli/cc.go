package cli

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// newCCCmd creates the cc command
func newCCCmd(flags *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cc [list | help | <task>]",
		Short: "List, describe or run custom tasks",
		Long: `List, describe or run the custom tasks configured in .glitterrc.

Every binary a task uses is looked up before the first command runs.`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: helpers.CompleteTasks,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, f actions.Flags) error {
				return actions.CustomCommandAction(ctx, actions.CustomCommandOptions{Args: args, Flags: f})
			})
		},
	}

	return cmd
}
