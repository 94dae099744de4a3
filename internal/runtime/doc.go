// Package runtime provides the execution context for glitter commands.
//
// It bundles the resolved configuration, the custom task set and the
// collaborators an action talks to (runner, repository probe, prompter, logger)
// so actions receive one value instead of a long parameter list.
package runtime
