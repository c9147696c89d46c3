// Package command runs external processes and locates executables.
package command

import (
	"errors"
)

// Error definitions for command package.
var (
	// ErrCommand is matched by every *CommandError.
	ErrCommand = errors.New("command error")

	// ErrNotFound is reported when an executable or a shebang line is missing.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCommand is reported when no command tokens are given.
	ErrEmptyCommand = errors.New("empty command")
)

// CommandError describes a failed process execution or executable lookup.
type CommandError struct {
	// Name is the command or file the error is about.
	Name    string
	Message string
	// Output holds the combined output of a failed command, if any.
	Output string
	Err    error
}

// NewCommandError creates a CommandError with a message and no cause.
func NewCommandError(message string) *CommandError {
	return &CommandError{Message: message}
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCommand) match any *CommandError.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}
