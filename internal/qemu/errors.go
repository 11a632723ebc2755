// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExecutable is returned if a [CommandSpec] does not name
	// an executable.
	ErrEmptyExecutable = errors.New("executable must not be empty")

	// ErrNonZeroExitCode is returned if the QEMU process did not exit
	// with exit code 0.
	ErrNonZeroExitCode = errors.New("exit code not 0")
)

// CommandError wraps any error occurred during Command execution.
//
// ExitCode is the exit code of the QEMU process. It is -1 if the
// process did not run, did not exit itself, or if its actual exit code
// is unknown.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	if errors.Is(e.Err, ErrNonZeroExitCode) {
		return fmt.Sprintf("qemu: exit code %d", e.ExitCode)
	}

	return "qemu: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
