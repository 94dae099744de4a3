// Package errors provides sentinel errors and custom error types for the glitter application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("this is not a git repository")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrConfirmationAborted indicates that the operator did not confirm the commit message
	ErrConfirmationAborted = errors.New("aborted before running any command")

	// ErrMissingArgument indicates that a template referenced an argument that was not provided
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidEnumValue indicates that an argument is not one of its allowed values
	ErrInvalidEnumValue = errors.New("invalid type enum")

	// ErrUnknownTask indicates that a hook, custom task or action name did not resolve
	ErrUnknownTask = errors.New("unknown task")

	// ErrBinaryNotFound indicates that a program could not be found on PATH
	ErrBinaryNotFound = errors.New("cannot find binary")

	// ErrCommandFailed indicates that an external command exited unsuccessfully
	ErrCommandFailed = errors.New("command failed")

	// ErrRemoteRefMissing marks a pull against a branch that does not exist upstream yet.
	// It is the only recoverable command failure.
	ErrRemoteRefMissing = errors.New("this branch does not exist on the remote repository")
)

// MissingArgumentError represents a template token whose argument was not provided
type MissingArgumentError struct {
	Index int
	Rest  bool
}

func (e *MissingArgumentError) Error() string {
	if e.Rest {
		return fmt.Sprintf("Argument %d was not provided. Argument %d is a rest argument.", e.Index, e.Index)
	}
	return fmt.Sprintf("Argument %d was not provided.", e.Index)
}

// Is returns true if the target error is ErrMissingArgument
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NewMissingArgumentError creates a new MissingArgumentError for a plain token
func NewMissingArgumentError(index int) *MissingArgumentError {
	return &MissingArgumentError{Index: index}
}

// NewMissingRestArgumentError creates a new MissingArgumentError for a rest token
func NewMissingRestArgumentError(index int) *MissingArgumentError {
	return &MissingArgumentError{Index: index, Rest: true}
}

// InvalidEnumValueError represents an argument that failed enum validation
type InvalidEnumValueError struct {
	Index   int
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("Argument %d did not have a valid type enum. Valid type enums are %s",
		e.Index, strings.Join(e.Allowed, ", "))
}

// Is returns true if the target error is ErrInvalidEnumValue
func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// NewInvalidEnumValueError creates a new InvalidEnumValueError
func NewInvalidEnumValueError(index int, value string, allowed []string) *InvalidEnumValueError {
	return &InvalidEnumValueError{
		Index:   index,
		Value:   value,
		Allowed: allowed,
	}
}

// UnknownHookError represents a configured hook that names no custom task
type UnknownHookError struct {
	Name string
}

func (e *UnknownHookError) Error() string {
	return fmt.Sprintf("Couldn't find the custom task `%s`", e.Name)
}

// Is returns true if the target error is ErrUnknownTask
func (e *UnknownHookError) Is(target error) bool {
	return target == ErrUnknownTask
}

// NewUnknownHookError creates a new UnknownHookError
func NewUnknownHookError(name string) *UnknownHookError {
	return &UnknownHookError{Name: name}
}

// UnknownCustomTaskError represents a `cc` sub command that is neither built in nor configured
type UnknownCustomTaskError struct {
	Name string
}

func (e *UnknownCustomTaskError) Error() string {
	return "That is not a valid custom command / sub command."
}

// Is returns true if the target error is ErrUnknownTask
func (e *UnknownCustomTaskError) Is(target error) bool {
	return target == ErrUnknownTask
}

// NewUnknownCustomTaskError creates a new UnknownCustomTaskError
func NewUnknownCustomTaskError(name string) *UnknownCustomTaskError {
	return &UnknownCustomTaskError{Name: name}
}

// UnknownActionError represents a top level action that is neither built in nor a custom task
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return "This is not a valid action or custom command."
}

// Is returns true if the target error is ErrUnknownTask
func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownTask
}

// NewUnknownActionError creates a new UnknownActionError
func NewUnknownActionError(name string) *UnknownActionError {
	return &UnknownActionError{Name: name}
}

// BinaryNotFoundError represents a program missing from PATH
type BinaryNotFoundError struct {
	Program string
	Err     error
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("Cannot find binary `%s`", e.Program)
}

// Is returns true if the target error is ErrBinaryNotFound
func (e *BinaryNotFoundError) Is(target error) bool {
	return target == ErrBinaryNotFound
}

func (e *BinaryNotFoundError) Unwrap() error {
	return e.Err
}

// NewBinaryNotFoundError creates a new BinaryNotFoundError
func NewBinaryNotFoundError(program string, err error) *BinaryNotFoundError {
	return &BinaryNotFoundError{Program: program, Err: err}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += " " + strings.Join(e.Args, " ")
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
