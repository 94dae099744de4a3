// Package git inspects the repository glitter runs in.
//
// It answers the two questions the pipeline needs before running anything:
// whether the working directory belongs to a repository, and which branch HEAD
// points at. Git itself is only ever invoked as a subprocess by the runner.
package git
