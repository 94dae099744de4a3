package cli

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd(flags *helpers.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <arguments...>",
		Short: "Build the commit message from the arguments and commit every change",
		Long: `Build the commit message from the arguments and commit every change.

The arguments are substituted into the commit_message template of .glitterrc:
$1 is the first argument and $2+ is every argument from the second onwards.
Configured hooks run before git add and git commit unless --no-verify is given.`,
		Example: `  glitter commit feat "add login form"
  glitter commit --raw "wip: anything goes"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, f actions.Flags) error {
				_, err := actions.CommitAction(ctx, actions.CommitOptions{Args: args, Flags: f})
				return err
			})
		},
	}

	return cmd
}
