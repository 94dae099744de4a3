package helpers

import (
	"github.com/spf13/cobra"

	"glitter.dev/glitter/internal/tasks"
)

// CompleteTasks is a helper for cobra.ValidArgsFunction that returns the cc
// subcommands and the custom tasks configured for the working directory.
func CompleteTasks(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	rcPath, _ := cmd.Flags().GetString("rc")
	cfg, err := LoadConfig(rcPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := append([]string{"list", "help"}, tasks.NewSet(cfg.CustomTasks).Names()...)
	return names, cobra.ShellCompDirectiveNoFileComp
}
