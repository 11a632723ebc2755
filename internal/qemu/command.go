// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path or name of the qemu-system binary. If it is not an
	// absolute path, it is resolved via PATH lookup on run.
	Executable string

	// Arguments to pass to the binary verbatim.
	Args []string
}

// Command is a single QEMU command that can be run.
type Command struct {
	executable string
	args       []string
}

// NewCommand creates a new [Command] from the given spec.
func NewCommand(spec CommandSpec) (*Command, error) {
	if spec.Executable == "" {
		return nil, ErrEmptyExecutable
	}

	return &Command{
		executable: spec.Executable,
		args:       spec.Args,
	}, nil
}

// String returns the complete command line the command runs.
func (c *Command) String() string {
	return strings.Join(append([]string{c.executable}, c.args...), " ")
}

// Run runs the command with the given context and standard streams
// attached. It blocks until the process terminated.
//
// All process related failures are returned as [CommandError]. If the
// process ran and exited with a non-zero exit code, the error wraps
// [ErrNonZeroExitCode] and carries the exit code. The exit code is -1
// if the process was terminated by a signal.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.executable, c.args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Err:      ErrNonZeroExitCode,
			ExitCode: exitErr.ExitCode(),
		}
	}

	if err != nil {
		return &CommandError{
			Err:      fmt.Errorf("start: %w", err),
			ExitCode: -1,
		}
	}

	return nil
}
