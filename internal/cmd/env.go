// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aibor/vex/internal/qemu"
	"github.com/aibor/vex/internal/store"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// commandRunner runs an external command with the given standard
// streams attached and blocks until it terminated.
type commandRunner interface {
	Run(ctx context.Context, spec qemu.CommandSpec, cfg IO) error
}

// qemuRunner runs the command as real child process.
type qemuRunner struct{}

func (qemuRunner) Run(
	ctx context.Context,
	spec qemu.CommandSpec,
	cfg IO,
) error {
	cmd, err := qemu.NewCommand(spec)
	if err != nil {
		return err
	}

	return cmd.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr)
}

// appEnv carries the capabilities the sub commands work against. Tests
// replace the confirmer and the runner with deterministic fakes.
type appEnv struct {
	io        IO
	configDir string
	verbose   bool
	confirm   Confirmer
	runner    commandRunner
}

func (e *appEnv) openStore() *store.Store {
	return store.New(e.configDir)
}

// completeNames provides dynamic shell completion for commands taking
// a configuration name as their first argument. It lists names only,
// without decoding record contents, so corrupt records can be
// completed, too.
func (e *appEnv) completeNames(
	_ *cobra.Command,
	args []string,
	_ string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names, err := e.openStore().ListNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}
