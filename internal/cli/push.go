package cli

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd(flags *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <arguments...>",
		Short: "Commit, then pull and push the current branch",
		Long: `Commit like glitter commit, then run git pull and git push against origin
for the current branch. A branch that does not exist on origin yet only
produces a warning on pull.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, f actions.Flags) error {
				return actions.PushAction(ctx, actions.PushOptions{Args: args, Flags: f})
			})
		},
	}

	return cmd
}
