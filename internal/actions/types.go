package actions

import (
	"strings"
	"time"

	"glitter.dev/glitter/internal/runner"
	"glitter.dev/glitter/internal/tui"
)

// Flags are the resolved command line switches shared by every action
type Flags struct {
	Dry      bool
	Raw      bool
	NoVerify bool
	Verbose  bool
	NoAdd    bool
}

func (f Flags) runOptions() runner.Options {
	return runner.Options{Dry: f.Dry, Verbose: f.Verbose}
}

// CommitResult is what a commit hands to the steps that follow it
type CommitResult struct {
	// Start is when the first command of the pipeline started
	Start time.Time
	// Branch is the checked out branch, empty when HEAD is detached
	Branch string
}

// BuiltinActions lists the actions glitter understands besides custom tasks
var BuiltinActions = []string{"push", "commit", "action", "actions", "cc", "undo"}

// ccSubcommands lists the subcommands of cc that are not custom tasks
var ccSubcommands = []string{"list", "help"}

func emphasizedList(names []string) string {
	return tui.Emphasize(strings.Join(names, ", "))
}
