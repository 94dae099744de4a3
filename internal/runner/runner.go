// Package runner executes the external commands of a glitter pipeline.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	glittererrors "glitter.dev/glitter/internal/errors"
	"glitter.dev/glitter/internal/tui"
)

// missingRemoteRef is printed by git when pulling a branch the remote does not have
const missingRemoteRef = "fatal: couldn't find remote ref"

// RemoteRefMissingNote is attached to the outcome of a pull whose branch is not on the remote yet
const RemoteRefMissingNote = "This branch does not exist on the remote repository."

// Command is one external program invocation
type Command struct {
	Program string
	Args    []string
	// Display replaces the generated command line on the status line
	Display string
}

// String renders the command the way it is shown to the operator
func (c Command) String() string {
	if c.Display != "" {
		return c.Display
	}
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Options control how a command is run
type Options struct {
	Dry     bool
	Verbose bool
}

// Status classifies a command that did not fail
type Status int

const (
	// StatusSuccess means the command exited with status 0 (or was a dry run)
	StatusSuccess Status = iota
	// StatusWarning means the command failed in a way the pipeline tolerates
	StatusWarning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Outcome is the result of a command that did not abort the pipeline
type Outcome struct {
	Status  Status
	Elapsed time.Duration
	Note    string
	Stdout  string
	Stderr  string
}

// Runner runs external commands
type Runner interface {
	// Run executes cmd. Any returned error must stop the pipeline.
	Run(ctx context.Context, cmd Command, opts Options) (Outcome, error)
	// LookPath resolves program on PATH
	LookPath(program string) (string, error)
}

// ProcessRunner runs commands as child processes of glitter
type ProcessRunner struct {
	splog    *tui.Splog
	lookPath func(string) (string, error)
	now      func() time.Time
}

// NewProcessRunner creates a runner that reports through splog
func NewProcessRunner(splog *tui.Splog) *ProcessRunner {
	return &ProcessRunner{
		splog:    splog,
		lookPath: exec.LookPath,
		now:      time.Now,
	}
}

// LookPath resolves program on PATH, returning a BinaryNotFoundError when it is missing
func (r *ProcessRunner) LookPath(program string) (string, error) {
	path, err := r.lookPath(program)
	if err != nil {
		return "", glittererrors.NewBinaryNotFoundError(program, err)
	}
	return path, nil
}

// Run executes cmd with the inherited environment and working directory.
// Output is captured and only shown when verbose or when the command fails.
func (r *ProcessRunner) Run(ctx context.Context, cmd Command, opts Options) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	status := r.splog.StartStatus(tui.Prompt() + " " + cmd.String())
	if opts.Dry {
		status.Success("")
		r.splog.Debug("dry run: %s", cmd.String())
		return Outcome{Status: StatusSuccess}, nil
	}

	path, err := r.LookPath(cmd.Program)
	if err != nil {
		status.Fail("Cannot find binary")
		return Outcome{}, err
	}

	start := r.now()
	proc := exec.CommandContext(ctx, path, cmd.Args...)
	proc.Env = os.Environ()
	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	runErr := proc.Run()
	outcome := Outcome{
		Elapsed: r.now().Sub(start),
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	if runErr != nil {
		if ctx.Err() != nil {
			runErr = ctx.Err()
		}
		if isMissingRemoteRef(cmd, outcome) {
			outcome.Status = StatusWarning
			outcome.Note = RemoteRefMissingNote
			status.Warn(tui.FormatDuration(outcome.Elapsed) + " | " + RemoteRefMissingNote)
			r.record(cmd, outcome, fmt.Errorf("%w: %v", glittererrors.ErrRemoteRefMissing, runErr))
			return outcome, nil
		}

		status.Fail("Command failed to run")
		r.record(cmd, outcome, runErr)
		return outcome, glittererrors.NewCommandError(cmd.Program, cmd.Args, outcome.Stdout, outcome.Stderr, runErr)
	}

	outcome.Status = StatusSuccess
	status.Success(tui.FormatDuration(outcome.Elapsed))
	if opts.Verbose && outcome.Stdout != "" {
		r.splog.Page(outcome.Stdout)
		if !strings.HasSuffix(outcome.Stdout, "\n") {
			r.splog.Newline()
		}
	}
	r.record(cmd, outcome, nil)
	return outcome, nil
}

func (r *ProcessRunner) record(cmd Command, outcome Outcome, err error) {
	status := outcome.Status.String()
	if err != nil && outcome.Status != StatusWarning {
		status = "failed"
	}
	attrs := []any{
		"program", cmd.Program,
		"args", strings.Join(cmd.Args, " "),
		"status", status,
		"elapsed_ms", outcome.Elapsed.Milliseconds(),
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	r.splog.Record("command finished", attrs...)
	r.splog.Debug("%s finished in %s", cmd.String(), tui.FormatDuration(outcome.Elapsed))
}

// isMissingRemoteRef reports whether a failed pull only failed because the branch is not on the remote
func isMissingRemoteRef(cmd Command, outcome Outcome) bool {
	if len(cmd.Args) == 0 || cmd.Args[0] != "pull" {
		return false
	}
	return strings.Contains(outcome.Stdout, missingRemoteRef) || strings.Contains(outcome.Stderr, missingRemoteRef)
}
