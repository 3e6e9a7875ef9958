package mise

import (
	"errors"
	"fmt"
)

// ErrBinaryNotFound is returned when no mise executable could be located
var ErrBinaryNotFound = errors.New("unable to locate the mise binary. Set MISE_BIN or ensure mise is on PATH")

// ErrOutputTooLarge is returned when mise writes more than the capture limit
var ErrOutputTooLarge = errors.New("mise output exceeded the capture limit")

// CommandError is returned when mise exits with a non-zero status
type CommandError struct {
	Command  string   // Display form, e.g. "mise ls --json"
	Args     []string // Arguments passed to mise
	Stdout   string
	Stderr   string
	ExitCode int // -1 when the process was terminated by a signal
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsCommandError checks if an error is a failed mise invocation
func IsCommandError(err error) bool {
	var target *CommandError
	return errors.As(err, &target)
}

// ExitCode returns the exit code carried by a CommandError and whether one was found
func ExitCode(err error) (int, bool) {
	var target *CommandError
	if errors.As(err, &target) {
		return target.ExitCode, true
	}
	return 0, false
}

// ValidationError rejects caller input before mise is invoked
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidationError checks if an error is a rejected input
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
