// Package tasks resolves custom task and hook names to the command lines they run.
package tasks

import (
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"glitter.dev/glitter/internal/config"
	"glitter.dev/glitter/internal/runner"
)

// Set is a case-insensitive collection of custom tasks
type Set struct {
	byName map[string]config.CustomTask
	names  []string
}

// NewSet indexes tasks by lower-cased name. When two tasks share a name the first one wins.
func NewSet(tasks []config.CustomTask) *Set {
	s := &Set{byName: make(map[string]config.CustomTask, len(tasks))}
	for _, task := range tasks {
		key := strings.ToLower(task.Name)
		if _, exists := s.byName[key]; exists {
			continue
		}
		s.byName[key] = task
		s.names = append(s.names, task.Name)
	}
	return s
}

// Resolve returns the command lines of the named task
func (s *Set) Resolve(name string) ([]string, bool) {
	task, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return task.Execute, true
}

// Names returns the task names in configuration order
func (s *Set) Names() []string {
	return s.names
}

// Len returns the number of distinct tasks
func (s *Set) Len() int {
	return len(s.names)
}

// ParseCommandLine splits a configured command line into a program and its arguments.
// Quoting follows shell rules and $VAR references expand from the environment.
func ParseCommandLine(line string) (runner.Command, error) {
	fields, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return runner.Command{}, fmt.Errorf("invalid command %q: %w", line, err)
	}
	if len(fields) == 0 {
		return runner.Command{}, fmt.Errorf("invalid command %q: no program given", line)
	}
	return runner.Command{Program: fields[0], Args: fields[1:]}, nil
}

// ParseCommandLines parses every line of a task, stopping at the first invalid one
func ParseCommandLines(lines []string) ([]runner.Command, error) {
	commands := make([]runner.Command, 0, len(lines))
	for _, line := range lines {
		cmd, err := ParseCommandLine(line)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
