// Package cli wires the glitter actions to cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/actions"
	"glitter.dev/glitter/internal/cli/helpers"
	"glitter.dev/glitter/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	// Actions match regardless of case, `glitter PUSH` works like `glitter push`
	cobra.EnableCaseInsensitive = true

	flags := &helpers.GlobalFlags{}

	rootCmd := &cobra.Command{
		Use:   "glitter <action> [arguments...]",
		Short: "Glitter turns a few positional arguments into a commit and runs your git workflow",
		Long: `Glitter turns a few positional arguments into a fully formed commit message
using the template in .glitterrc, then runs your hooks, git add, git commit
and, for push, git pull and git push.

Any action that is not built in is looked up in the custom tasks of .glitterrc.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return helpers.Run(cmd, flags, func(ctx *runtime.Context, f actions.Flags) error {
				return actions.FallbackAction(ctx, actions.FallbackOptions{Action: args[0], Flags: f})
			})
		},
	}

	flags.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newCommitCmd(flags),
		newPushCmd(flags),
		newCCCmd(flags),
		newUndoCmd(flags),
		newActionsCmd(flags),
	)

	return rootCmd
}
