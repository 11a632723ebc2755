// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aibor/vex/internal/qemu"
	"github.com/aibor/vex/internal/store"
)

// Run is the main entry point for the CLI command. It returns the
// process exit code. A declined confirmation prompt is a cancellation,
// not an error, and exits with code 0.
func Run(ctx context.Context, args []string, cfg IO) int {
	configDir, err := store.DefaultDir()
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	env := &appEnv{
		io:        cfg,
		configDir: configDir,
		confirm:   newStdConfirmer(cfg.Stdin, cfg.Stdout),
		runner:    qemuRunner{},
	}

	cmd := newRootCommand(env)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(ctx)

	return handleRunError(err, cfg.Stderr)
}

func handleRunError(err error, stdErr io.Writer) int {
	if err == nil {
		return 0
	}

	exitCode := -1

	// Propagate the exit code of the QEMU process, so "vex exec" is
	// transparent to wrapping tooling.
	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
		exitCode = cmdErr.ExitCode
	}

	fmt.Fprintf(stdErr, "Error [vex]: %v\n", err)

	return exitCode
}
