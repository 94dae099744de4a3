// Package actions provides the glitter workflows behind the CLI commands.
//
// Each action corresponds to a glitter command (commit, push, cc, undo, ...)
// and composes the template expander, the custom task set and the runner.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Tasks, Runner, Splog and the rest
//   - Flags are resolved once by the CLI and passed in as Flags
//   - Every failure is returned; nothing in this package exits the process
//   - All template and task resolution happens before the first command runs
package actions
